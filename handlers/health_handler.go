package handlers

import (
	"context"
	"time"

	"esuka/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Healthz pings the database with a short deadline.
func Healthz(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil {
			return utils.JSONError(c, fiber.StatusServiceUnavailable, "database unavailable", err.Error())
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(ctx); err != nil {
			return utils.JSONError(c, fiber.StatusServiceUnavailable, "database unavailable", err.Error())
		}
		return utils.OK(c, "ok", fiber.Map{"database": "up"})
	}
}
