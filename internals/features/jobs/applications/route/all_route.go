// internals/features/jobs/applications/route/all_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/features/jobs/applications/controller"
	"jobportal_backend/internals/middlewares"
)

// AllApplicationRoutes mounts the public apply endpoint with the form
// submission rate limit.
func AllApplicationRoutes(public fiber.Router, db *gorm.DB) {
	h := controller.NewApplicationController(db)

	public.Post("/jobs/:slug/apply", middlewares.FormSubmitRateLimiter(), h.Apply)
}
