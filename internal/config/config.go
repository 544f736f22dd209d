package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Completion CompletionConfig
	Upload     UploadConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type CompletionConfig struct {
	Provider    string // "groq" or "gemini"
	Model       string
	BaseURL     string
	Temperature float32
	MaxTokens   int
}

type UploadConfig struct {
	MaxFileSize int64
}

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"

	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqModel   = "meta-llama/llama-3.1-70b-versatile"
	defaultGeminiModel = "gemini-2.5-flash"

	// 50 MiB
	defaultMaxFileSize = 52428800
)

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	provider := getEnv("COMPLETION_PROVIDER", ProviderGroq)

	model := getEnv("COMPLETION_MODEL", "")
	if model == "" {
		if provider == ProviderGemini {
			model = defaultGeminiModel
		} else {
			model = defaultGroqModel
		}
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Completion: CompletionConfig{
			Provider:    provider,
			Model:       model,
			BaseURL:     getEnv("COMPLETION_BASE_URL", defaultGroqBaseURL),
			Temperature: 0.7,
			MaxTokens:   8192,
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", defaultMaxFileSize),
		},
	}
}

// CompletionAPIKey reads the provider credential from the process
// environment on every call, so each request sees the current value rather
// than a snapshot taken at startup. Empty means the service is not
// configured.
func (c *Config) CompletionAPIKey() string {
	if c.Completion.Provider == ProviderGemini {
		return os.Getenv("GEMINI_API_KEY")
	}
	return os.Getenv("GROQ_API_KEY")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
