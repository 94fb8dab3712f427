package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/karabo-m/luct-reporting-api/internal/apperr"
)

// APIResponse describes the common structure for API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

// SendSuccess sends a successful JSON response with a message.
func SendSuccess(c *fiber.Ctx, message string, data interface{}) error {
	if message == "" {
		message = "success"
	}

	return c.Status(fiber.StatusOK).JSON(APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(APIResponse{
		Success: false,
		Message: message,
	})
}

// SendAppError maps the core error taxonomy onto HTTP statuses: validation
// 400, authorization 403, missing entity 404, transient store failure 503.
// Anything unclassified is a 500 with the detail withheld from the client.
func SendAppError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		return SendError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		return SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrUnavailable):
		return SendError(c, fiber.StatusServiceUnavailable, err.Error())
	default:
		return SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
