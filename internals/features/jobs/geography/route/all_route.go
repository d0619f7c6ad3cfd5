package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/features/jobs/cascade"
	gCtrl "jobportal_backend/internals/features/jobs/geography/controller"
)

func AllGeographyRoutes(public fiber.Router, app *fiber.App, db *gorm.DB, resolver *cascade.Resolver) {
	h := gCtrl.NewGeographyController(db, resolver)

	public.Get("/states", h.ListStates)

	// dependent-dropdown endpoint, same path the form JS calls
	app.Get("/ajax/load-cities", h.LoadCities)
}
