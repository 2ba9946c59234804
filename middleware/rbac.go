package middleware

import (
	"esuka/models"
	"esuka/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin guards the user management group.
func RequireAdmin() fiber.Handler {
	return AuthorizeRoles(services.ErrAdminOnly.Error(), models.RoleAdmin)
}

// RequireReferenceAdmin guards mutations of bidang and klasifikasi.
func RequireReferenceAdmin() fiber.Handler {
	return AuthorizeRoles(services.ErrReferenceAdminOnly.Error(), models.RoleAdmin)
}
