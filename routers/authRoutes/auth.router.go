package authRoutes

import (
	authControllers "peer2learn/controllers/auth"
	authValidators "peer2learn/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/register", authControllers.RegisterPage)
	app.Post("/register", authValidators.Register(), authControllers.Register)
	app.Get("/login", authControllers.LoginPage)
	app.Post("/login", authValidators.Login(), authControllers.Login)
	app.Get("/logout", authControllers.Logout)
}
