// internals/features/home/companies/route/company_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/constants"
	"jobportal_backend/internals/features/home/companies/controller"
	"jobportal_backend/internals/middlewares/auth"
)

// AllCompanyRoutes mounts the public site-content reads.
func AllCompanyRoutes(public fiber.Router, db *gorm.DB) {
	h := controller.NewCompanyController(db)

	public.Get("/companies", h.ListCompanies)
	public.Get("/testimonials", h.ListTestimonials)
	public.Get("/site-settings", h.GetSiteSettings)
}

// CompanyAdminRoutes mounts the admin site-content management.
func CompanyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.NewCompanyController(db)

	guard := auth.OnlyRolesSlice(constants.RoleErrorAdmin("manage site content"), constants.AdminOnly)

	companies := admin.Group("/companies", guard)
	companies.Post("/", h.CreateCompany)
	companies.Patch("/:id", h.UpdateCompany)
	companies.Delete("/:id", h.DeleteCompany)

	testimonials := admin.Group("/testimonials", guard)
	testimonials.Post("/", h.CreateTestimonial)
	testimonials.Delete("/:id", h.DeleteTestimonial)

	admin.Patch("/site-settings", guard, h.UpdateSiteSettings)
}
