package homeRoutes

import (
	homeControllers "peer2learn/controllers/home"
	"peer2learn/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupHomeRoutes sets up the public pages
func SetupHomeRoutes(app *fiber.App) {
	app.Get("/", middleware.OptionalSession, homeControllers.Index)
	app.Get("/ranking", homeControllers.Ranking)
}
