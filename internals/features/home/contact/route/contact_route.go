// internals/features/home/contact/route/contact_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/constants"
	"jobportal_backend/internals/features/home/contact/controller"
	"jobportal_backend/internals/middlewares"
	"jobportal_backend/internals/middlewares/auth"
)

// AllContactRoutes mounts the public contact form with its rate limit.
func AllContactRoutes(public fiber.Router, db *gorm.DB) {
	h := controller.NewContactController(db)

	public.Post("/contact", middlewares.FormSubmitRateLimiter(), h.SubmitContact)
}

// ContactAdminRoutes mounts the admin inbox.
func ContactAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.NewContactController(db)

	msgs := admin.Group("/contact-messages",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("read contact messages"), constants.AdminOnly),
	)
	msgs.Get("/", h.ListContactMessages)
	msgs.Patch("/:id/read", h.MarkContactRead)
	msgs.Delete("/:id", h.DeleteContactMessage)
}
