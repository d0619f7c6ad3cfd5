// internals/features/users/account/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/features/users/account/controller"
	"jobportal_backend/internals/middlewares"
)

// AuthRoutes mounts registration and login with their rate limits.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	h := controller.NewAccountController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), h.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), h.Login)
	auth.Post("/refresh", h.Refresh)
}

// AccountUserRoutes mounts the authenticated profile endpoints.
func AccountUserRoutes(user fiber.Router, db *gorm.DB) {
	h := controller.NewAccountController(db)

	user.Get("/me", h.Me)
	user.Patch("/me", h.UpdateProfile)
	user.Post("/change-password", h.ChangePassword)
}
