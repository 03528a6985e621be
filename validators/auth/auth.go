package authValidator

import (
	"strings"

	"peer2learn/views"

	"github.com/gofiber/fiber/v2"
)

// Credentials is the parsed register/login form body.
type Credentials struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Register validates the registration form
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(Credentials)
		if err := c.BodyParser(reqData); err != nil {
			return views.Render(c, fiber.StatusBadRequest, "Register", "<p>Invalid request body!</p>")
		}

		reqData.Username = strings.TrimSpace(reqData.Username)

		errors := make([]string, 0)
		if reqData.Username == "" {
			errors = append(errors, "Username is required!")
		} else if len(reqData.Username) > 50 {
			errors = append(errors, "Username must be at most 50 characters long!")
		}
		if reqData.Password == "" {
			errors = append(errors, "Password is required!")
		} else if len(reqData.Password) > 50 {
			errors = append(errors, "Password must be at most 50 characters long!")
		}

		if len(errors) > 0 {
			return views.Render(c, fiber.StatusUnprocessableEntity, "Register",
				"<p>"+views.Escape(strings.Join(errors, " "))+"</p>")
		}

		c.Locals("validatedCredentials", reqData)
		return c.Next()
	}
}

// Login validates the login form
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(Credentials)
		if err := c.BodyParser(reqData); err != nil {
			return views.Render(c, fiber.StatusBadRequest, "Login", "<p>Invalid request body!</p>")
		}

		reqData.Username = strings.TrimSpace(reqData.Username)

		if reqData.Username == "" || reqData.Password == "" {
			return views.Render(c, fiber.StatusUnprocessableEntity, "Login",
				"<p>Username and password are required!</p>")
		}

		c.Locals("validatedCredentials", reqData)
		return c.Next()
	}
}
