package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/karabo-m/luct-reporting-api/internal/dto"
	"github.com/karabo-m/luct-reporting-api/internal/service"
	"github.com/karabo-m/luct-reporting-api/internal/utils"
)

// RatingHandler wires class rating HTTP routes under /reports/:id.
type RatingHandler struct {
	service service.RatingService
	logger  zerolog.Logger
}

// NewRatingHandler constructs the handler.
func NewRatingHandler(service service.RatingService, logger zerolog.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		logger:  logger.With().Str("component", "rating_handler").Logger(),
	}
}

// Register attaches rating endpoints to the report router group.
func (h *RatingHandler) Register(router fiber.Router) {
	router.Put("/:id/rating", h.rate)
	router.Get("/:id/rating", h.userRating)
	router.Get("/:id/rating/average", h.average)
}

func (h *RatingHandler) rate(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return nil
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.RatingRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	rating, err := h.service.Rate(c.Context(), actor, id, payload)
	if err != nil {
		return utils.SendAppError(c, err)
	}

	return utils.SendSuccess(c, "class rated", rating)
}

func (h *RatingHandler) userRating(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return nil
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	rating, err := h.service.UserRating(c.Context(), actor, id)
	if err != nil {
		return utils.SendAppError(c, err)
	}

	return utils.SendSuccess(c, "rating retrieved", rating)
}

func (h *RatingHandler) average(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	average, err := h.service.Average(c.Context(), id)
	if err != nil {
		return utils.SendAppError(c, err)
	}

	return utils.SendSuccess(c, "average rating retrieved", average)
}
