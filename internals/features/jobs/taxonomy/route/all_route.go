package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/features/jobs/cascade"
	tCtrl "jobportal_backend/internals/features/jobs/taxonomy/controller"
)

func AllTaxonomyRoutes(public fiber.Router, app *fiber.App, db *gorm.DB, resolver *cascade.Resolver) {
	h := tCtrl.NewTaxonomyController(db, resolver)

	public.Get("/categories", h.ListCategories)

	// dependent-dropdown endpoints, same paths the form JS calls
	app.Get("/ajax/load-subcategories", h.LoadSubcategories)
	app.Get("/ajax/load-functional-areas", h.LoadFunctionalAreas)
}
