package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/prajwalshetti/Project-matrimony/src/lib"
	"github.com/prajwalshetti/Project-matrimony/src/services"
)

type ConnectionController struct {
	connections *services.ConnectionService
	log         *zap.Logger
}

func NewConnectionController(connections *services.ConnectionService, log *zap.Logger) *ConnectionController {
	return &ConnectionController{connections: connections, log: log}
}

// GetMyConnections lists the authenticated user's connections, each showing
// the other party.
func (ctl *ConnectionController) GetMyConnections(c *fiber.Ctx) error {
	user := currentUser(c)

	connections, err := ctl.connections.List(c.Context(), user.Id)
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count":       len(connections),
		"connections": connections,
	})
}

// GetConnectionById returns one connection with both participants resolved.
// Only a participant may view it.
func (ctl *ConnectionController) GetConnectionById(c *fiber.Ctx) error {
	connectionID, err := primitive.ObjectIDFromHex(c.Params("connectionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid connection ID format"))
	}

	user := currentUser(c)

	connection, err := ctl.connections.Get(c.Context(), connectionID, user.Id)
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"connection": connection,
	})
}

// RemoveConnection permanently deletes a connection the authenticated user
// participates in.
func (ctl *ConnectionController) RemoveConnection(c *fiber.Ctx) error {
	connectionID, err := primitive.ObjectIDFromHex(c.Params("connectionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid connection ID format"))
	}

	user := currentUser(c)

	if err := ctl.connections.Remove(c.Context(), connectionID, user.Id); err != nil {
		return errorResponse(c, ctl.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Connection removed successfully"))
}
