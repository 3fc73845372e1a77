package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prajwalshetti/Project-matrimony/src/controllers"
)

func UserRoutes(app *fiber.App, protect fiber.Handler, ctl *controllers.UserController) {
	user := app.Group("/api/v1/user")

	user.Post("/register", ctl.Register)
	user.Post("/loginuser", ctl.Login)
	user.Post("/logoutuser", protect, ctl.Logout)
	user.Get("/getAllUsers", ctl.GetAllUsers)
	user.Get("/getUserById/:id", ctl.GetUserById)

	user.Put("/updateUser", protect, ctl.UpdateUser)
	user.Get("/getLoggedinUser", protect, ctl.GetLoggedinUser)
	user.Post("/uploadProfilePhoto", protect, ctl.UploadProfilePhoto)
	user.Get("/profileCompletion", protect, ctl.GetProfileCompletion)
}
