package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/karabo-m/luct-reporting-api/internal/middleware"
	"github.com/karabo-m/luct-reporting-api/internal/models"
	"github.com/karabo-m/luct-reporting-api/internal/utils"
)

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	value := c.Params(name)
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.New("invalid identifier")
	}
	return uint(parsed), nil
}

// requireActor fetches the Actor bound by the actor-loader middleware, or
// writes a 401 and reports false.
func requireActor(c *fiber.Ctx) (models.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		_ = utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
		return models.Actor{}, false
	}
	return actor, true
}
