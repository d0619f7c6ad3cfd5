package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "jobportal_backend/internals/helpers"
)

// OnlyRolesSlice allows only the given roles; message is returned on 403.
func OnlyRolesSlice(message string, roles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromLocals(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, message)
	}
}
