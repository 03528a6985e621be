package authController

import (
	"errors"
	"log"
	"time"

	"peer2learn/database"
	"peer2learn/leaderboard"
	"peer2learn/services"
	"peer2learn/session"
	authValidator "peer2learn/validators/auth"
	"peer2learn/views"

	"github.com/gofiber/fiber/v2"
)

// RegisterPage renders the registration form.
func RegisterPage(c *fiber.Ctx) error {
	return views.Render(c, fiber.StatusOK, "Register",
		"<h2>Register</h2>"+views.CredentialsForm("/register", "Register"))
}

// Register creates a new user and redirects to the login page.
// A taken username returns an error page, not a redirect.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCredentials").(*authValidator.Credentials)
	if !ok {
		return views.Render(c, fiber.StatusBadRequest, "Register", "<p>Invalid request data!</p>")
	}

	user, err := services.RegisterUser(database.Database.Db, reqData.Username, reqData.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			return views.Render(c, fiber.StatusConflict, "Register",
				"<p>This username is already taken!</p>")
		}
		log.Printf("Error registering user: %v", err)
		return views.Render(c, fiber.StatusInternalServerError, "Register",
			"<p>Failed to register. Please try again.</p>")
	}

	if err := leaderboard.Ranking.Update(c.Context(), user.Username, user.Points); err != nil {
		log.Printf("Error updating ranking cache: %v", err)
	}

	return c.Redirect("/login", fiber.StatusFound)
}

// LoginPage renders the login form.
func LoginPage(c *fiber.Ctx) error {
	return views.Render(c, fiber.StatusOK, "Login",
		"<h2>Login</h2>"+views.CredentialsForm("/login", "Login"))
}

// Login checks credentials, issues a session token and redirects home.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCredentials").(*authValidator.Credentials)
	if !ok {
		return views.Render(c, fiber.StatusBadRequest, "Login", "<p>Invalid request data!</p>")
	}

	user, err := services.Authenticate(database.Database.Db, reqData.Username, reqData.Password)
	if err != nil {
		return views.Render(c, fiber.StatusUnauthorized, "Login",
			"<p>Wrong username or password!</p>")
	}

	token, err := session.Sessions.Create(c.Context(), user.Username)
	if err != nil {
		log.Printf("Error creating session: %v", err)
		return views.Render(c, fiber.StatusInternalServerError, "Login",
			"<p>Failed to log in. Please try again.</p>")
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect("/", fiber.StatusFound)
}

// Logout clears the session and redirects home. Logging out without a
// session is not an error.
func Logout(c *fiber.Ctx) error {
	if token := c.Cookies(session.CookieName); token != "" {
		if err := session.Sessions.Delete(c.Context(), token); err != nil {
			log.Printf("Error deleting session: %v", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect("/", fiber.StatusFound)
}
