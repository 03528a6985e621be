package controllers

import (
	"fmt"
	"log"
	"strings"

	"peer2learn/database"
	"peer2learn/models"
	"peer2learn/services"
	"peer2learn/views"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the catalog with an enroll link per course.
func GetAllCourses(c *fiber.Ctx) error {
	courses, err := services.ListCourses(database.Database.Db)
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return views.Render(c, fiber.StatusInternalServerError, "Courses",
			"<p>Failed to fetch courses!</p>")
	}

	var b strings.Builder
	b.WriteString("<h2>Courses</h2><ul>")
	for _, course := range courses {
		b.WriteString(fmt.Sprintf(
			`<li>%s &ndash; <a href="/enroll/%d">Enroll (%d points)</a></li>`,
			views.Escape(course.Name), course.ID, models.EnrollCost,
		))
	}
	b.WriteString("</ul>")

	return views.Render(c, fiber.StatusOK, "Courses", b.String())
}
