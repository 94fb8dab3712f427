package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/karabo-m/luct-reporting-api/internal/apperr"
	"github.com/karabo-m/luct-reporting-api/internal/models"
)

type stubActorResolver struct {
	actor models.Actor
	err   error
}

func (s *stubActorResolver) Actor(_ context.Context, id uint) (models.Actor, error) {
	if s.err != nil {
		return models.Actor{}, s.err
	}
	return s.actor, nil
}

func TestLoadActorBindsResolvedActor(t *testing.T) {
	resolver := &stubActorResolver{actor: models.Actor{ID: 7, Role: models.RoleLecturer}}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(7))
		return c.Next()
	})
	app.Use(LoadActor(resolver))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		actor, ok := ActorFromContext(c)
		require.True(t, ok)
		require.Equal(t, uint(7), actor.ID)
		require.Equal(t, models.RoleLecturer, actor.Role)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLoadActorRejectsDeletedAccount(t *testing.T) {
	resolver := &stubActorResolver{err: apperr.NotFoundf("user 7")}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(7))
		return c.Next()
	})
	app.Use(LoadActor(resolver))
	app.Get("/whoami", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRoleAllowsListedRoles(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("actor", models.Actor{ID: 1, Role: models.RoleAdmin})
		return c.Next()
	})
	app.Use(RequireRole(models.RoleAdmin, models.RoleProgramLeader))
	app.Get("/admin", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("actor", models.Actor{ID: 1, Role: models.RoleStudent})
		return c.Next()
	})
	app.Use(RequireRole(models.RoleAdmin))
	app.Get("/admin", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleWithoutActorIsUnauthorized(t *testing.T) {
	app := fiber.New()
	app.Use(RequireRole(models.RoleAdmin))
	app.Get("/admin", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
