package middleware

import (
	"esuka/models"
	"esuka/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthorizeRoles lets the request through when the actor holds one of
// allowedRoles. An empty list only requires authentication.
func AuthorizeRoles(message string, allowedRoles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = struct{}{}
	}
	if message == "" {
		message = "insufficient permissions"
	}

	return func(c *fiber.Ctx) error {
		actor, ok := GetActor(c)
		if !ok {
			return utils.Unauthorized(c, "authorization context missing")
		}

		if len(allowed) == 0 {
			return c.Next()
		}

		if _, ok := allowed[actor.Role]; !ok {
			return utils.Forbidden(c, message)
		}

		return c.Next()
	}
}
