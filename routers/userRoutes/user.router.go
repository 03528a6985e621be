package userProfileRoutes

import (
	userProfileController "peer2learn/controllers/userControllers"
	"peer2learn/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	app.Get("/profile", middleware.SessionAuth, userProfileController.Profile)
}
