package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/constants"
	"jobportal_backend/internals/features/jobs/cascade"
	gCtrl "jobportal_backend/internals/features/jobs/geography/controller"
	"jobportal_backend/internals/middlewares/auth"
)

func GeographyAdminRoutes(admin fiber.Router, db *gorm.DB, resolver *cascade.Resolver) {
	h := gCtrl.NewGeographyController(db, resolver)

	guard := auth.OnlyRolesSlice(
		constants.RoleErrorAdmin("geography registry"),
		constants.AdminOnly,
	)

	states := admin.Group("/states", guard)
	states.Post("/", h.CreateState)
	states.Get("/", h.ListStates)
	states.Patch("/:id", h.UpdateState)
	states.Delete("/:id", h.DeleteState)

	cities := admin.Group("/cities", guard)
	cities.Post("/", h.CreateCity)
	cities.Patch("/:id", h.UpdateCity)
	cities.Delete("/:id", h.DeleteCity)
}
