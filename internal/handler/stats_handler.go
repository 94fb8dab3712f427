package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/karabo-m/luct-reporting-api/internal/service"
	"github.com/karabo-m/luct-reporting-api/internal/utils"
)

// StatsHandler wires the statistics summary route.
type StatsHandler struct {
	service service.StatsService
	logger  zerolog.Logger
}

// NewStatsHandler constructs the handler.
func NewStatsHandler(service service.StatsService, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger.With().Str("component", "stats_handler").Logger(),
	}
}

// Register attaches the stats endpoint to the router group.
func (h *StatsHandler) Register(router fiber.Router) {
	router.Get("/summary", h.summary)
}

func (h *StatsHandler) summary(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return nil
	}

	summary, err := h.service.Summary(c.Context(), actor)
	if err != nil {
		return utils.SendAppError(c, err)
	}

	return utils.SendSuccess(c, "statistics retrieved", summary)
}
