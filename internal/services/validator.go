package services

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/alexzlotnikov/pitchdeeper/internal/models"
)

// MaxUploadBytes is the upload size cap: 50 MiB. A file of exactly this
// size is accepted.
const MaxUploadBytes int64 = 52428800

var allowedExtensions = map[string]bool{
	"pdf":  true,
	"ppt":  true,
	"pptx": true,
}

// extensionSegment returns the lowercased segment after the last dot. A
// dotless filename is its own segment, so a bare "pdf" passes the
// allow-list.
func extensionSegment(filename string) string {
	if i := strings.LastIndex(filename, "."); i != -1 {
		return strings.ToLower(filename[i+1:])
	}
	return strings.ToLower(filename)
}

type UploadValidator interface {
	// Validate runs the fixed check sequence: credential, file presence,
	// extension, size. The first failing check wins; on success the
	// uploaded file's metadata is returned.
	Validate(apiKey string, file *multipart.FileHeader) (*models.UploadedFile, *models.ValidationError)
}

type uploadValidator struct {
	maxFileSize int64
}

func NewUploadValidator(maxFileSize int64) UploadValidator {
	if maxFileSize <= 0 {
		maxFileSize = MaxUploadBytes
	}
	return &uploadValidator{maxFileSize: maxFileSize}
}

func (v *uploadValidator) Validate(apiKey string, file *multipart.FileHeader) (*models.UploadedFile, *models.ValidationError) {
	if apiKey == "" {
		return nil, &models.ValidationError{
			Code:    models.CodeAPIKeyMissing,
			Message: "AI service not configured. Please contact support.",
			Status:  fiber.StatusInternalServerError,
		}
	}

	if file == nil {
		return nil, &models.ValidationError{
			Code:    models.CodeNoFile,
			Message: "No file was uploaded. Please select a file and try again.",
			Status:  fiber.StatusBadRequest,
		}
	}

	if !allowedExtensions[extensionSegment(file.Filename)] {
		return nil, &models.ValidationError{
			Code:    models.CodeInvalidFileType,
			Message: "Please upload a PDF or PowerPoint file (.pdf, .ppt, .pptx)",
			Status:  fiber.StatusBadRequest,
		}
	}

	if file.Size > v.maxFileSize {
		return nil, &models.ValidationError{
			Code:    models.CodeFileTooLarge,
			Message: fmt.Sprintf("File size too large. Please upload a file smaller than %dMB.", v.maxFileSize/1024/1024),
			Status:  fiber.StatusBadRequest,
		}
	}

	return &models.UploadedFile{
		Name:      file.Filename,
		MimeType:  file.Header.Get("Content-Type"),
		SizeBytes: file.Size,
	}, nil
}
