package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prajwalshetti/Project-matrimony/src/controllers"
)

// RequestRoutes wires the connection-request lifecycle: send, list received
// and sent (with optional status filter), accept, reject and cancel.
func RequestRoutes(app *fiber.App, protect fiber.Handler, ctl *controllers.RequestController) {
	request := app.Group("/api/v1/request", protect)

	request.Post("/sendRequest", ctl.SendRequest)
	request.Get("/receivedRequests", ctl.GetReceivedRequests)
	request.Get("/sentRequests", ctl.GetSentRequests)
	request.Put("/acceptRequest/:requestId", ctl.AcceptRequest)
	request.Put("/rejectRequest/:requestId", ctl.RejectRequest)
	request.Put("/cancelRequest/:requestId", ctl.CancelRequest)
}
