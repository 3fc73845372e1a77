package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prajwalshetti/Project-matrimony/src/controllers"
)

func ConnectionRoutes(app *fiber.App, protect fiber.Handler, ctl *controllers.ConnectionController) {
	connection := app.Group("/api/v1/connection", protect)

	connection.Get("/myConnections", ctl.GetMyConnections)
	connection.Get("/getConnectionByID/:connectionId", ctl.GetConnectionById)
	connection.Delete("/removeConnectionByID/:connectionId", ctl.RemoveConnection)
}
