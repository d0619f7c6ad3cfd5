// internals/route/base_routes.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// BaseRoutes exposes the health check used by the deployment probes.
func BaseRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}
