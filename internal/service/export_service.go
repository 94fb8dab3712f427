package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/karabo-m/luct-reporting-api/internal/apperr"
	"github.com/karabo-m/luct-reporting-api/internal/dto"
	"github.com/karabo-m/luct-reporting-api/internal/models"
	"github.com/karabo-m/luct-reporting-api/internal/repository"
)

// ExportService produces the role-filtered, fully-joined report rows an
// external renderer serializes. Visibility follows the same rule as listings.
type ExportService interface {
	Rows(ctx context.Context, actor models.Actor) ([]dto.ReportExportRow, error)
}

type exportService struct {
	reports repository.ReportRepository
	logger  zerolog.Logger
}

// NewExportService builds a new export service.
func NewExportService(reports repository.ReportRepository, logger zerolog.Logger) ExportService {
	return &exportService{
		reports: reports,
		logger:  logger.With().Str("component", "export_service").Logger(),
	}
}

func (s *exportService) Rows(ctx context.Context, actor models.Actor) ([]dto.ReportExportRow, error) {
	reports, err := s.reports.List(ctx, reportScope(actor, nil))
	if err != nil {
		return nil, apperr.FromStore(err)
	}

	rows := make([]dto.ReportExportRow, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, dto.NewReportExportRow(report))
	}

	s.logger.Info().
		Int("rows", len(rows)).
		Str("role", string(actor.Role)).
		Msg("report export generated")

	return rows, nil
}
