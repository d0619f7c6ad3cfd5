// internals/features/home/feed/route/feed_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/features/home/feed/controller"
)

// AllFeedRoutes mounts the landing page aggregate.
func AllFeedRoutes(public fiber.Router, db *gorm.DB) {
	h := controller.NewFeedController(db)

	public.Get("/home", h.Home)
}
