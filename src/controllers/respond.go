package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/prajwalshetti/Project-matrimony/src/lib"
	"github.com/prajwalshetti/Project-matrimony/src/models"
	"github.com/prajwalshetti/Project-matrimony/src/services"
)

// errorResponse maps a service error kind to a status code: validation and
// conflict are 400, authorization 403, not-found 404, anything else is an
// unexpected server error.
func errorResponse(c *fiber.Ctx, log *zap.Logger, err error) error {
	switch services.KindOf(err) {
	case services.KindValidation, services.KindConflict:
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(err.Error()))
	case services.KindAuthorization:
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse(err.Error()))
	case services.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse(err.Error()))
	default:
		log.Error("unexpected error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
}

// currentUser returns the authenticated user placed by ProtectRoute.
func currentUser(c *fiber.Ctx) models.User {
	return c.Locals("user").(models.User)
}
