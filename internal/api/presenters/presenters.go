package presenters

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"yumzy-backend/domain"
)

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(code).JSON(res)
}

// ErrorResponseFromError maps a service error to its HTTP status by kind.
// Unclassified errors are logged with context and surfaced as a generic
// internal error so storage details never leak to the caller.
func ErrorResponseFromError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrConflict):
		return ErrorResponse(c, fiber.StatusConflict, message, err)
	case errors.Is(err, domain.ErrAccessDenied):
		return ErrorResponse(c, fiber.StatusForbidden, message, err)
	case errors.Is(err, domain.ErrValidation):
		return ErrorResponse(c, fiber.StatusUnprocessableEntity, message, err)
	default:
		logrus.WithFields(logrus.Fields{
			"path":   c.Path(),
			"method": c.Method(),
		}).WithError(err).Error("unhandled error")
		return ErrorResponse(c, fiber.StatusInternalServerError, message, errors.New("internal server error"))
	}
}
