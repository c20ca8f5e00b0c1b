package handler

import (
	"go-pos-backoffice/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// tenantID reads the tenant stamped by the guard middleware.
func tenantID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals("tenant_id").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case apperr.KindForbidden:
		return fiber.StatusForbidden
	case apperr.KindValidation:
		return fiber.StatusBadRequest
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindInsufficientStock, apperr.KindReferentialConflict, apperr.KindConflict:
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// fail maps a service error to a response. Raw storage errors are never
// echoed to the caller.
func fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "Internal Server Error"
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}
