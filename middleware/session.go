package middleware

import (
	"peer2learn/database"
	"peer2learn/models"
	"peer2learn/session"

	"github.com/gofiber/fiber/v2"
)

// SessionAuth resolves the session cookie to a user and stores it in the
// request context. Requests without a valid session are redirected to the
// login page before any handler runs.
func SessionAuth(c *fiber.Ctx) error {
	user := resolveUser(c)
	if user == nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalSession resolves the session cookie when present but never
// redirects; pages like the landing page vary on session presence.
func OptionalSession(c *fiber.Ctx) error {
	if user := resolveUser(c); user != nil {
		c.Locals("user", user)
	}
	return c.Next()
}

// CurrentUser returns the user set by SessionAuth/OptionalSession, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

func resolveUser(c *fiber.Ctx) *models.User {
	token := c.Cookies(session.CookieName)
	if token == "" {
		return nil
	}

	username, err := session.Sessions.Get(c.Context(), token)
	if err != nil || username == "" {
		return nil
	}

	var user models.User
	if err := database.Database.Db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil
	}
	return &user
}
