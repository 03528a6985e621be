package userController

import (
	"fmt"
	"log"
	"strings"

	"peer2learn/database"
	"peer2learn/middleware"
	"peer2learn/services"
	"peer2learn/views"

	"github.com/gofiber/fiber/v2"
)

// Profile shows the logged-in user's points and enrolled courses.
func Profile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	courseNames, err := services.UserCourseNames(database.Database.Db, user.ID)
	if err != nil {
		log.Printf("Error fetching enrollments for user %d: %v", user.ID, err)
		return views.Render(c, fiber.StatusInternalServerError, "Profile",
			"<p>Failed to load profile!</p>")
	}

	courses := "None"
	if len(courseNames) > 0 {
		escaped := make([]string, 0, len(courseNames))
		for _, name := range courseNames {
			escaped = append(escaped, views.Escape(name))
		}
		courses = strings.Join(escaped, ", ")
	}

	body := fmt.Sprintf(`<h2>Profile: %s</h2>
<p>Points: %d</p>
<p>Courses: %s</p>
<p><a href="/courses">Course list</a></p>`,
		views.Escape(user.Username), user.Points, courses)

	return views.Render(c, fiber.StatusOK, "Profile", body)
}
