package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/constants"
	"jobportal_backend/internals/features/jobs/cascade"
	tCtrl "jobportal_backend/internals/features/jobs/taxonomy/controller"
	"jobportal_backend/internals/middlewares/auth"
)

func TaxonomyAdminRoutes(admin fiber.Router, db *gorm.DB, resolver *cascade.Resolver) {
	h := tCtrl.NewTaxonomyController(db, resolver)

	guard := auth.OnlyRolesSlice(
		constants.RoleErrorAdmin("taxonomy registry"),
		constants.AdminOnly,
	)

	categories := admin.Group("/categories", guard)
	categories.Post("/", h.CreateCategory)
	categories.Get("/", h.ListCategories)
	categories.Patch("/:id", h.UpdateCategory)
	categories.Delete("/:id", h.DeleteCategory)

	subcategories := admin.Group("/subcategories", guard)
	subcategories.Post("/", h.CreateSubcategory)
	subcategories.Patch("/:id", h.UpdateSubcategory)
	subcategories.Delete("/:id", h.DeleteSubcategory)

	fareas := admin.Group("/functional-areas", guard)
	fareas.Post("/", h.CreateFunctionalArea)
	fareas.Patch("/:id", h.UpdateFunctionalArea)
	fareas.Delete("/:id", h.DeleteFunctionalArea)
}
