package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/services"
)

// analysisError maps a pipeline failure to the HTTP error the app's error
// handler renders.
func analysisError(err error) error {
	switch {
	case errors.Is(err, services.ErrUnsupportedFileType):
		return fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, services.ErrExtraction):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrMissingAPIKey):
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	case errors.Is(err, services.ErrFeedbackUnavailable):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

// ErrorHandler renders every returned error as {"error", "code"} JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
