package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/karabo-m/luct-reporting-api/internal/dto"
	"github.com/karabo-m/luct-reporting-api/internal/service"
	"github.com/karabo-m/luct-reporting-api/internal/utils"
)

// ExportHandler streams the report sheet visible to the caller as CSV.
type ExportHandler struct {
	service service.ExportService
	logger  zerolog.Logger
}

// NewExportHandler constructs the handler.
func NewExportHandler(service service.ExportService, logger zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		logger:  logger.With().Str("component", "export_handler").Logger(),
	}
}

// Register attaches the export endpoint to the router group.
func (h *ExportHandler) Register(router fiber.Router) {
	router.Get("/reports.csv", h.exportReports)
}

func (h *ExportHandler) exportReports(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return nil
	}

	rows, err := h.service.Rows(c.Context(), actor)
	if err != nil {
		return utils.SendAppError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(dto.ExportHeaders()); err != nil {
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to render export")
	}
	for _, row := range rows {
		if err := w.Write(row.Record()); err != nil {
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to render export")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to render export")
	}

	filename := fmt.Sprintf("luct-reports-%s-%s.csv", actor.Role, time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
