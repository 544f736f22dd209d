package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/alexzlotnikov/pitchdeeper/internal/config"
	"github.com/alexzlotnikov/pitchdeeper/internal/models"
	"github.com/alexzlotnikov/pitchdeeper/internal/services"
)

type AnalyzeHandler struct {
	cfg       *config.Config
	validator services.UploadValidator
	analyzer  services.AnalyzerService
}

func NewAnalyzeHandler(
	cfg *config.Config,
	validator services.UploadValidator,
	analyzer services.AnalyzerService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:       cfg,
		validator: validator,
		analyzer:  analyzer,
	}
}

// HandleAnalyzePitch handles POST /api/analyze-pitch. The uploaded file's
// bytes stay in request memory and are discarded when the handler returns;
// only metadata flows into the analysis pipeline.
func (h *AnalyzeHandler) HandleAnalyzePitch(c *fiber.Ctx) error {
	apiKey := h.cfg.CompletionAPIKey()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		fileHeader = nil
	}

	upload, verr := h.validator.Validate(apiKey, fileHeader)
	if verr != nil {
		return c.Status(verr.Status).JSON(models.ErrorResponse{
			Error: verr.Message,
			Code:  verr.Code,
		})
	}

	analysisID := uuid.New()
	log.Printf("Processing file: %s Type: %s Size: %d [analysis %s]",
		upload.Name, upload.MimeType, upload.SizeBytes, analysisID)

	analysis, err := h.analyzer.AnalyzePitch(c.Context(), apiKey, upload)
	if err != nil {
		log.Printf("❌ Analysis %s failed: %v", analysisID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   err.Error(),
			Details: err.Error(),
		})
	}

	log.Printf("✅ Analysis %s completed successfully", analysisID)
	c.Set("X-Analysis-Id", analysisID.String())
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(analysis)
}
