package middleware

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/karabo-m/luct-reporting-api/internal/apperr"
	"github.com/karabo-m/luct-reporting-api/internal/models"
	"github.com/karabo-m/luct-reporting-api/internal/utils"
)

// ActorResolver resolves the full acting identity for an authenticated user.
type ActorResolver interface {
	Actor(ctx context.Context, id uint) (models.Actor, error)
}

// LoadActor resolves the stored Actor (role, stream, program type) for the
// authenticated user and binds it to the request. Core operations receive
// this value explicitly; nothing downstream reads token claims directly.
func LoadActor(resolver ActorResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := UserIDFromContext(c)
		if userID == 0 {
			return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
		}

		actor, err := resolver.Actor(c.Context(), userID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return utils.SendError(c, fiber.StatusUnauthorized, "account no longer exists")
			}
			return utils.SendAppError(c, err)
		}

		c.Locals("actor", actor)
		return c.Next()
	}
}

// ActorFromContext returns the Actor bound by LoadActor.
func ActorFromContext(c *fiber.Ctx) (models.Actor, bool) {
	if v := c.Locals("actor"); v != nil {
		if actor, ok := v.(models.Actor); ok {
			return actor, true
		}
	}
	return models.Actor{}, false
}

// RequireRole ensures the bound actor holds one of the allowed roles.
func RequireRole(roles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		actor, ok := ActorFromContext(c)
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
		}
		if _, ok := allowed[actor.Role]; !ok {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}
