package features

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"kshetraku_backend/internals/constants"
)

// IsTempleAdmin gates calendar/pricing admin routes on the role claim.
func IsTempleAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		role = strings.ToLower(strings.TrimSpace(role))
		for _, r := range constants.AdminAndAbove {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("sacred calendar"))
	}
}

// IsTempleStaff allows staff and above (booking counters read naal data).
func IsTempleStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		role = strings.ToLower(strings.TrimSpace(role))
		for _, r := range constants.StaffAndAbove {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorNonUser("sacred calendar"))
	}
}
