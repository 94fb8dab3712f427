package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/karabo-m/luct-reporting-api/internal/apperr"
	"github.com/karabo-m/luct-reporting-api/internal/dto"
	"github.com/karabo-m/luct-reporting-api/internal/models"
	"github.com/karabo-m/luct-reporting-api/internal/repository"
)

// StatsService derives portal statistics from the report collection. Every
// summary is recomputed from the current store state; nothing is cached.
type StatsService interface {
	Summary(ctx context.Context, actor models.Actor) (dto.StatsSummaryResponse, error)
}

type statsService struct {
	reports repository.ReportRepository
	users   repository.UserRepository
	recentN int
	logger  zerolog.Logger
	now     func() time.Time
}

// NewStatsService constructs the statistics service.
func NewStatsService(reports repository.ReportRepository, users repository.UserRepository, recentN int, logger zerolog.Logger) StatsService {
	if recentN <= 0 {
		recentN = 5
	}
	return &statsService{
		reports: reports,
		users:   users,
		recentN: recentN,
		logger:  logger.With().Str("component", "stats_service").Logger(),
		now:     time.Now,
	}
}

func (s *statsService) Summary(ctx context.Context, actor models.Actor) (dto.StatsSummaryResponse, error) {
	tracer := otel.Tracer("github.com/karabo-m/luct-reporting-api/internal/service/stats")
	ctx, span := tracer.Start(ctx, "stats.aggregate",
		trace.WithAttributes(attribute.String("stats.actor_role", string(actor.Role))))
	defer span.End()

	scope := reportScope(actor, nil)

	reports, err := s.reports.List(ctx, scope)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_reports_failed")
		return dto.StatsSummaryResponse{}, apperr.FromStore(err)
	}

	userCount, err := s.users.Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count_users_failed")
		return dto.StatsSummaryResponse{}, apperr.FromStore(err)
	}

	recent, err := s.reports.ListRecent(ctx, scope, s.recentN)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_recent_failed")
		return dto.StatsSummaryResponse{}, apperr.FromStore(err)
	}

	span.SetAttributes(
		attribute.Int64("stats.total_users", userCount),
		attribute.Int("stats.report_count", len(reports)),
	)

	return dto.StatsSummaryResponse{
		TotalUsers:      userCount,
		TotalReports:    int64(len(reports)),
		ReportsByStatus: countByStatus(reports),
		ReportsByCourse: countByCourse(reports),
		RecentActivity:  recentActivity(recent),
		GeneratedAt:     s.now(),
	}, nil
}

// countByStatus groups reports by lifecycle status. Statuses with no reports
// are absent from the map, not zero-filled.
func countByStatus(reports []models.Report) map[string]int64 {
	counts := make(map[string]int64)
	for _, report := range reports {
		counts[string(report.Status)]++
	}
	return counts
}

// countByCourse groups reports by the (code, name) composite key the portal
// displays.
func countByCourse(reports []models.Report) map[string]int64 {
	counts := make(map[string]int64)
	for _, report := range reports {
		key := fmt.Sprintf("%s - %s", report.CourseCode, report.CourseName)
		counts[key]++
	}
	return counts
}

func recentActivity(reports []models.Report) []dto.RecentReport {
	recent := make([]dto.RecentReport, 0, len(reports))
	for _, report := range reports {
		recent = append(recent, dto.RecentReport{
			ID:           report.ID,
			CourseCode:   report.CourseCode,
			ClassName:    report.ClassName,
			LecturerName: report.Lecturer.Name,
			Status:       string(report.Status),
			CreatedAt:    report.CreatedAt,
		})
	}
	return recent
}
