// internals/features/jobs/postings/route/all_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/features/jobs/postings/controller"
)

// AllJobPostRoutes mounts the public read-only posting endpoints.
func AllJobPostRoutes(public fiber.Router, db *gorm.DB) {
	h := controller.NewJobPostController(db)

	public.Get("/jobs", h.SearchJobPosts)
	public.Get("/jobs/:slug", h.GetJobPostBySlug)
	public.Get("/categories/:slug/jobs", h.ListByCategorySlug)
	public.Get("/subcategories/:slug/jobs", h.ListBySubcategorySlug)
	public.Get("/functional-areas/:slug/jobs", h.ListByFunctionalAreaSlug)
}
