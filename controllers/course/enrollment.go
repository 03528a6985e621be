package controllers

import (
	"errors"
	"fmt"
	"log"

	"peer2learn/database"
	"peer2learn/leaderboard"
	"peer2learn/middleware"
	"peer2learn/services"
	"peer2learn/views"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse runs the enrollment transaction for the logged-in user.
func EnrollInCourse(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	// Retrieve validated course ID
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return views.Render(c, fiber.StatusBadRequest, "Enroll", "<p>Invalid Course ID!</p>")
	}

	db := database.Database.Db

	enrollment, err := services.Enroll(db, user.ID, courseID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCourseNotFound):
			return views.Render(c, fiber.StatusNotFound, "Enroll", "<p>Course not found!</p>")
		case errors.Is(err, services.ErrInsufficientPoints):
			return views.Render(c, fiber.StatusConflict, "Enroll", "<p>Not enough points!</p>")
		default:
			log.Printf("Error enrolling user %d in course %d: %v", user.ID, courseID, err)
			return views.Render(c, fiber.StatusInternalServerError, "Enroll",
				"<p>Failed to enroll. Please try again.</p>")
		}
	}

	course, err := services.FindCourseByID(db, enrollment.CourseID)
	if err != nil {
		log.Printf("Error loading course %d after enrollment: %v", enrollment.CourseID, err)
		return views.Render(c, fiber.StatusInternalServerError, "Enroll",
			"<p>Failed to enroll. Please try again.</p>")
	}

	// Re-read the balance the transaction left behind.
	fresh, err := services.FindUserByUsername(db, user.Username)
	if err != nil {
		log.Printf("Error reloading user %s: %v", user.Username, err)
		return views.Render(c, fiber.StatusInternalServerError, "Enroll",
			"<p>Failed to enroll. Please try again.</p>")
	}

	if err := leaderboard.Ranking.Update(c.Context(), fresh.Username, fresh.Points); err != nil {
		log.Printf("Error updating ranking cache: %v", err)
	}

	return views.Render(c, fiber.StatusOK, "Enroll", fmt.Sprintf(
		"<p>%s enrolled in %s! Points left: %d</p>",
		views.Escape(fresh.Username), views.Escape(course.Name), fresh.Points,
	))
}
