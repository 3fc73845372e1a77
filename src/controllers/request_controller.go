package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/prajwalshetti/Project-matrimony/src/lib"
	"github.com/prajwalshetti/Project-matrimony/src/services"
)

type RequestController struct {
	requests *services.RequestService
	log      *zap.Logger
}

func NewRequestController(requests *services.RequestService, log *zap.Logger) *RequestController {
	return &RequestController{requests: requests, log: log}
}

type sendRequestBody struct {
	ReceiverId string `json:"receiverId"`
	Message    string `json:"message"`
}

// SendRequest creates a pending request from the authenticated user to the
// receiver given in the body.
func (ctl *RequestController) SendRequest(c *fiber.Ctx) error {
	var body sendRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user := currentUser(c)

	var receiverID primitive.ObjectID
	if body.ReceiverId != "" {
		var err error
		receiverID, err = primitive.ObjectIDFromHex(body.ReceiverId)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID format"))
		}
	}

	request, err := ctl.requests.Send(c.Context(), user.Id, receiverID, body.Message)
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Request sent successfully",
		"request": request,
	})
}

// GetReceivedRequests lists requests addressed to the authenticated user,
// optionally filtered by ?status=.
func (ctl *RequestController) GetReceivedRequests(c *fiber.Ctx) error {
	user := currentUser(c)

	requests, err := ctl.requests.ListReceived(c.Context(), user.Id, c.Query("status"))
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count":    len(requests),
		"requests": requests,
	})
}

// GetSentRequests lists requests the authenticated user has sent, optionally
// filtered by ?status=.
func (ctl *RequestController) GetSentRequests(c *fiber.Ctx) error {
	user := currentUser(c)

	requests, err := ctl.requests.ListSent(c.Context(), user.Id, c.Query("status"))
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count":    len(requests),
		"requests": requests,
	})
}

// AcceptRequest accepts a pending request addressed to the authenticated
// user and returns the materialized connection.
func (ctl *RequestController) AcceptRequest(c *fiber.Ctx) error {
	requestID, err := primitive.ObjectIDFromHex(c.Params("requestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request ID format"))
	}

	user := currentUser(c)

	connection, err := ctl.requests.Accept(c.Context(), requestID, user.Id)
	if err != nil {
		return errorResponse(c, ctl.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    "Request accepted successfully",
		"connection": connection,
	})
}

// RejectRequest rejects a pending request addressed to the authenticated user.
func (ctl *RequestController) RejectRequest(c *fiber.Ctx) error {
	requestID, err := primitive.ObjectIDFromHex(c.Params("requestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request ID format"))
	}

	user := currentUser(c)

	if err := ctl.requests.Reject(c.Context(), requestID, user.Id); err != nil {
		return errorResponse(c, ctl.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Request rejected successfully"))
}

// CancelRequest cancels a pending request the authenticated user has sent.
func (ctl *RequestController) CancelRequest(c *fiber.Ctx) error {
	requestID, err := primitive.ObjectIDFromHex(c.Params("requestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request ID format"))
	}

	user := currentUser(c)

	if err := ctl.requests.Cancel(c.Context(), requestID, user.Id); err != nil {
		return errorResponse(c, ctl.log, err)
	}

	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Request cancelled successfully"))
}
