// internals/features/jobs/postings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/constants"
	"jobportal_backend/internals/features/jobs/postings/controller"
	"jobportal_backend/internals/middlewares/auth"
)

// JobPostUserRoutes mounts the employer-facing posting endpoints under
// the authenticated group.
func JobPostUserRoutes(user fiber.Router, db *gorm.DB) {
	h := controller.NewJobPostController(db)

	jobs := user.Group("/jobs",
		auth.OnlyRolesSlice(constants.RoleErrorEmployer("manage job postings"), constants.EmployerAndAbove),
	)
	jobs.Post("/", h.CreateJobPost)
	jobs.Patch("/:id", h.UpdateJobPost)
}

// JobPostAdminRoutes mounts the admin-only posting endpoints.
func JobPostAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.NewJobPostController(db)

	jobs := admin.Group("/jobs",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("manage job postings"), constants.AdminOnly),
	)
	jobs.Get("/", h.ListAllJobPosts)
	jobs.Patch("/:id", h.UpdateJobPost)
	jobs.Delete("/:id", h.DeleteJobPost)
}
