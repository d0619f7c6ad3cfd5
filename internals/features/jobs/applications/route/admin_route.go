// internals/features/jobs/applications/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/constants"
	"jobportal_backend/internals/features/jobs/applications/controller"
	"jobportal_backend/internals/middlewares/auth"
)

// ApplicationAdminRoutes mounts application triage for admins.
func ApplicationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.NewApplicationController(db)

	apps := admin.Group("/applications",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("review applications"), constants.AdminOnly),
	)
	apps.Get("/", h.ListApplications)
	apps.Get("/:id", h.GetApplication)
	apps.Patch("/:id", h.TriageApplication)
}
