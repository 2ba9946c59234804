package middleware

import (
	"strings"
	"time"

	"esuka/utils"
	"esuka/utils/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func Cors(allowOrigins string) fiber.Handler {
	origins := strings.TrimSpace(allowOrigins)
	if origins == "" {
		origins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: origins != "*",
	})
}

func Logger() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}

func Recover() fiber.Handler {
	return recover.New(recover.Config{EnableStackTrace: true})
}

// GlobalRateLimiter applies to every API route.
func GlobalRateLimiter() fiber.Handler {
	return rateLimiter(100, time.Minute, "too many requests, please try again later")
}

// LoginRateLimiter is the stricter budget of the login route.
func LoginRateLimiter() fiber.Handler {
	return rateLimiter(5, time.Minute, "too many login attempts, please try again in a minute")
}

func rateLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return utils.JSONError(c, fiber.StatusTooManyRequests, message, nil)
		},
	})
}

// Metrics records count and latency per matched route.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.RecordHTTP(c.Method(), c.Route().Path, status, time.Since(start).Seconds())
		return err
	}
}
