package courseRoutes

import (
	controllers "peer2learn/controllers/course"
	"peer2learn/middleware"
	validators "peer2learn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the course listing and enrollment routes
func SetupCourseRoutes(app *fiber.App) {
	app.Get("/courses", middleware.SessionAuth, controllers.GetAllCourses)
	app.Get("/enroll/:course_id", middleware.SessionAuth, validators.EnrollCourse(), controllers.EnrollInCourse)
}
