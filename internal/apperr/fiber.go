package apperr

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// AsFiber converts a service error into the fiber error the handlers return.
// Infrastructure errors are logged and hidden behind a generic 500.
func AsFiber(err error) *fiber.Error {
	var e *Error
	if errors.As(err, &e) {
		return fiber.NewError(Status(err), e.Message)
	}
	log.Println("Unexpected error:", err)
	return fiber.NewError(fiber.StatusInternalServerError, "Unexpected server error")
}
