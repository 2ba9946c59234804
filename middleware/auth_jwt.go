package middleware

import (
	"context"
	"errors"
	"strings"

	"esuka/services"
	"esuka/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	ContextClaimsKey = "jwtClaims"
	ContextActorKey  = "actor"
)

// ActorResolver loads the current profile behind verified claims.
type ActorResolver interface {
	ResolveActor(ctx context.Context, claims *utils.JWTClaims) (*services.Actor, error)
}

// RequireAuth verifies the bearer access token and stores both the claims
// and the resolved Actor in the request locals.
func RequireAuth(tokens *utils.TokenManager, resolver ActorResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return utils.Unauthorized(c, "missing Authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.Unauthorized(c, "invalid Authorization header")
		}

		tokenString := strings.TrimSpace(parts[1])
		claims, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			return utils.Unauthorized(c, "invalid or expired token")
		}

		actor, err := resolver.ResolveActor(c.UserContext(), claims)
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				return utils.Unauthorized(c, "account no longer exists")
			}
			return utils.InternalServerError(c, "failed to resolve user", err)
		}

		c.Locals(ContextClaimsKey, claims)
		c.Locals(ContextActorKey, *actor)

		return c.Next()
	}
}

func GetJWTClaims(c *fiber.Ctx) (*utils.JWTClaims, bool) {
	claims, ok := c.Locals(ContextClaimsKey).(*utils.JWTClaims)
	return claims, ok
}

// GetActor returns the Actor stored by RequireAuth.
func GetActor(c *fiber.Ctx) (services.Actor, bool) {
	actor, ok := c.Locals(ContextActorKey).(services.Actor)
	return actor, ok
}
