package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"esuka/config"
	"esuka/models"
	"esuka/services"
	"esuka/utils"
	"esuka/utils/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubResolver struct {
	actors map[uint]services.Actor
}

func (r stubResolver) ResolveActor(_ context.Context, claims *utils.JWTClaims) (*services.Actor, error) {
	a, ok := r.actors[claims.UserID]
	if !ok {
		return nil, services.ErrUnauthorized
	}
	return &a, nil
}

func testTokens() *utils.TokenManager {
	return utils.NewTokenManager(config.JWTConfig{
		SecretKey:       []byte("middleware-secret"),
		Issuer:          "e-suka-test",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: time.Hour,
	})
}

func newTestApp(tokens *utils.TokenManager, resolver ActorResolver, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{RequireAuth(tokens, resolver)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		actor, ok := GetActor(c)
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendString(actor.Name())
	})
	app.Get("/whoami", handlers...)
	return app
}

func bearer(t *testing.T, tokens *utils.TokenManager, user models.User) string {
	t.Helper()
	token, _, err := tokens.GenerateAccessToken(user)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRequireAuth(t *testing.T) {
	tokens := testTokens()
	admin := models.User{Model: gorm.Model{ID: 1}, Email: "admin@bappeda.go.id", FullName: "Admin TU", Role: models.RoleAdmin}
	resolver := stubResolver{actors: map[uint]services.Actor{1: services.ActorFromUser(admin)}}
	app := newTestApp(tokens, resolver)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", fiber.StatusUnauthorized},
		{"deleted account", bearer(t, tokens, models.User{Model: gorm.Model{ID: 99}, Email: "x@y.z"}), fiber.StatusUnauthorized},
		{"valid", bearer(t, tokens, admin), fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tokens := testTokens()
	admin := models.User{Model: gorm.Model{ID: 1}, Email: "admin@bappeda.go.id", Role: models.RoleAdmin}
	staff := models.User{Model: gorm.Model{ID: 2}, Email: "staf@bappeda.go.id", Role: models.RoleUser}
	resolver := stubResolver{actors: map[uint]services.Actor{
		1: services.ActorFromUser(admin),
		2: services.ActorFromUser(staff),
	}}
	app := newTestApp(tokens, resolver, RequireAdmin())

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", bearer(t, tokens, staff))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", bearer(t, tokens, admin))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthorizeRolesWithoutActor(t *testing.T) {
	app := fiber.New()
	app.Get("/", AuthorizeRoles("", models.RoleAdmin), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Post("/login", LoginRateLimiter(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	app := fiber.New()
	app.Use(Metrics(m))
	app.Get("/api/ping/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/ping/:id", "204")))
}
