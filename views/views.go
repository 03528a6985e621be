// Package views renders the minimal inline HTML pages of the application.
// The presentation layer is deliberately thin: small literal snippets,
// no template engine.
package views

import (
	"fmt"
	"html"

	"github.com/gofiber/fiber/v2"
)

// Page wraps a body in the common document shell.
func Page(title, body string) string {
	return fmt.Sprintf(
		`<!DOCTYPE html><html><head><meta charset="utf-8"><title>%s</title></head><body>%s</body></html>`,
		html.EscapeString(title), body,
	)
}

// Render sends a full HTML page.
func Render(c *fiber.Ctx, status int, title, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).SendString(Page(title, body))
}

// Escape escapes user-supplied text for interpolation into a page body.
func Escape(s string) string {
	return html.EscapeString(s)
}

// CredentialsForm is the shared username/password form used by the
// register and login pages.
func CredentialsForm(action, submitLabel string) string {
	return fmt.Sprintf(`<form method="post" action="%s">
Username: <input type="text" name="username"><br>
Password: <input type="password" name="password"><br>
<button type="submit">%s</button>
</form>`, action, html.EscapeString(submitLabel))
}
