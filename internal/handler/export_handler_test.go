package handler_test

import (
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/karabo-m/luct-reporting-api/internal/dto"
	"github.com/karabo-m/luct-reporting-api/internal/handler"
	"github.com/karabo-m/luct-reporting-api/internal/models"
	"github.com/karabo-m/luct-reporting-api/internal/service"
)

type stubExportService struct {
	rows      []dto.ReportExportRow
	err       error
	lastActor models.Actor
}

func (s *stubExportService) Rows(_ context.Context, actor models.Actor) ([]dto.ReportExportRow, error) {
	s.lastActor = actor
	return s.rows, s.err
}

var _ service.ExportService = (*stubExportService)(nil)

func TestExportHandlerRendersCSV(t *testing.T) {
	svc := &stubExportService{rows: []dto.ReportExportRow{{
		CourseCode:      "DIWA2110",
		CourseName:      "Web Application Development",
		ClassName:       "BIT2A",
		Week:            6,
		Date:            "2026-08-24",
		Time:            "08:30",
		Venue:           "MM4",
		StudentsPresent: 38,
		TotalRegistered: 45,
		AttendanceRate:  "84.4%",
		Topic:           "REST API design",
		Status:          "submitted",
		LecturerName:    "Thabo Molefe",
		Feedback:        "N/A",
		ReviewerName:    "N/A",
	}}}

	app := fiber.New()
	group := app.Group("/api/v1/export", func(c *fiber.Ctx) error {
		c.Locals("actor", models.Actor{ID: 1, Role: models.RoleLecturer})
		return c.Next()
	})
	handler.NewExportHandler(svc, zerolog.Nop()).Register(group)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/reports.csv", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "luct-reports-lecturer-")

	records, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	resp.Body.Close()

	require.Len(t, records, 2)
	require.Equal(t, dto.ExportHeaders(), records[0])
	require.Equal(t, "DIWA2110", records[1][0])
	require.Equal(t, "84.4%", records[1][9])
	require.Equal(t, models.RoleLecturer, svc.lastActor.Role)
}

func TestExportHandlerRequiresActor(t *testing.T) {
	svc := &stubExportService{}

	app := fiber.New()
	handler.NewExportHandler(svc, zerolog.Nop()).Register(app.Group("/api/v1/export"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/reports.csv", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
