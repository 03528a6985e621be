package courseValidator

import (
	"strconv"
	"strings"

	"peer2learn/views"

	"github.com/gofiber/fiber/v2"
)

// EnrollCourse validates the :course_id route parameter.
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("course_id"))
		if courseIDStr == "" {
			return views.Render(c, fiber.StatusBadRequest, "Enroll", "<p>Course ID is required!</p>")
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return views.Render(c, fiber.StatusBadRequest, "Enroll", "<p>Invalid Course ID!</p>")
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}
