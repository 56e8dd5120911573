package responses

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ErrorHandler is the single funnel for every route-level failure. Errors
// carrying an HTTP status reply with that status and message; anything else
// becomes a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Generic Server Error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	if code == fiber.StatusInternalServerError {
		logrus.WithError(err).Error("Unhandled error")
		message = "Generic Server Error"
	}

	return c.Status(code).JSON(ErrorBody{Status: code, Message: message})
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

// Unauthorized is part of the error-mapping surface; no current route
// raises it.
func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}
