package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/alexzlotnikov/pitchdeeper/internal/models"
)

// ErrorHandler renders every unhandled error as the single JSON error body
// shape. A transport-level 413 (body over the server's limit, rejected
// before the handler ever sees the file) is mapped to the same
// FILE_TOO_LARGE rejection the validator produces, so every oversized
// upload carries that code.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	if code == fiber.StatusRequestEntityTooLarge {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "File size too large. Please upload a file smaller than 50MB.",
			Code:  models.CodeFileTooLarge,
		})
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: err.Error(),
	})
}
