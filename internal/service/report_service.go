package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/karabo-m/luct-reporting-api/internal/apperr"
	"github.com/karabo-m/luct-reporting-api/internal/dto"
	"github.com/karabo-m/luct-reporting-api/internal/models"
	"github.com/karabo-m/luct-reporting-api/internal/repository"
)

const lectureDateLayout = "2006-01-02"

// ReportService exposes the report lifecycle use cases: creation lands a
// report in submitted state, a principal lecturer's annotation moves it to
// reviewed, and reads are role-scoped.
type ReportService interface {
	Create(ctx context.Context, actor models.Actor, payload dto.ReportCreateRequest) (dto.ReportResponse, error)
	List(ctx context.Context, actor models.Actor, statusFilter string) ([]dto.ReportResponse, error)
	Get(ctx context.Context, actor models.Actor, id uint) (dto.ReportResponse, error)
	Review(ctx context.Context, actor models.Actor, id uint, payload dto.ReviewRequest) (dto.ReportResponse, error)
	SetReviewerRating(ctx context.Context, actor models.Actor, id uint, payload dto.ReviewerRatingRequest) (dto.ReportResponse, error)
}

type reportService struct {
	repo      repository.ReportRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewReportService builds a new report service.
func NewReportService(repo repository.ReportRepository, validate *validator.Validate, logger zerolog.Logger) ReportService {
	return &reportService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "report_service").Logger(),
	}
}

func (s *reportService) Create(ctx context.Context, actor models.Actor, payload dto.ReportCreateRequest) (dto.ReportResponse, error) {
	if !actor.Role.CanAuthorReport() {
		return dto.ReportResponse{}, apperr.Forbiddenf("role %q may not submit reports", actor.Role)
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.ReportResponse{}, apperr.Validationf("%v", err)
	}

	stream := models.Stream(payload.Stream)
	if !stream.Valid() {
		return dto.ReportResponse{}, apperr.Validationf("unknown stream %q", payload.Stream)
	}

	program := models.ProgramType(payload.ProgramType)
	if !program.Valid() {
		return dto.ReportResponse{}, apperr.Validationf("unknown program type %q", payload.ProgramType)
	}

	lectureDate, err := time.Parse(lectureDateLayout, payload.DateOfLecture)
	if err != nil {
		return dto.ReportResponse{}, apperr.Validationf("invalid lecture date: %v", err)
	}

	report := models.Report{
		LecturerID:      actor.ID,
		FacultyName:     payload.FacultyName,
		ClassName:       payload.ClassName,
		CourseCode:      payload.CourseCode,
		CourseName:      payload.CourseName,
		Stream:          stream,
		Program:         program,
		AcademicYear:    payload.AcademicYear,
		Semester:        payload.Semester,
		WeekOfReporting: payload.WeekOfReporting,
		DateOfLecture:   lectureDate,
		ScheduledTime:   payload.ScheduledTime,
		Venue:           payload.Venue,
		StudentsPresent: payload.StudentsPresent,
		TotalRegistered: payload.TotalRegistered,
		TopicTaught:     payload.TopicTaught,
		LearningOutcome: payload.LearningOutcome,
		Recommendations: payload.Recommendations,
		SelfRating:      payload.SelfRating,
		Status:          models.StatusSubmitted,
	}

	if err := s.repo.Create(ctx, &report); err != nil {
		return dto.ReportResponse{}, apperr.FromStore(err)
	}

	s.logger.Info().
		Uint("report_id", report.ID).
		Uint("lecturer_id", actor.ID).
		Str("course_code", report.CourseCode).
		Msg("report submitted")

	created, err := s.repo.GetByID(ctx, report.ID)
	if err != nil {
		return dto.NewReportResponse(report), nil
	}

	return dto.NewReportResponse(created), nil
}

func (s *reportService) List(ctx context.Context, actor models.Actor, statusFilter string) ([]dto.ReportResponse, error) {
	var status *models.ReportStatus
	if statusFilter != "" {
		parsed := models.ReportStatus(statusFilter)
		if !parsed.Valid() {
			return nil, apperr.Validationf("unknown status %q", statusFilter)
		}
		status = &parsed
	}

	reports, err := s.repo.List(ctx, reportScope(actor, status))
	if err != nil {
		return nil, apperr.FromStore(err)
	}

	return dto.NewReportResponseSlice(reports), nil
}

func (s *reportService) Get(ctx context.Context, actor models.Actor, id uint) (dto.ReportResponse, error) {
	report, err := s.visibleReport(ctx, actor, id)
	if err != nil {
		return dto.ReportResponse{}, err
	}

	return dto.NewReportResponse(report), nil
}

func (s *reportService) Review(ctx context.Context, actor models.Actor, id uint, payload dto.ReviewRequest) (dto.ReportResponse, error) {
	if actor.Role != models.RolePrincipalLecturer {
		return dto.ReportResponse{}, apperr.Forbiddenf("only principal lecturers may review reports")
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.ReportResponse{}, apperr.Validationf("%v", err)
	}

	annotated, err := s.repo.Annotate(ctx, id, actor.ID, payload.Feedback, payload.Rating)
	if err != nil {
		return dto.ReportResponse{}, apperr.FromStore(err)
	}

	if !annotated {
		// Either the report is missing or feedback was already set; fetch to
		// tell the two apart. The prior state is untouched in both cases.
		report, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.ReportResponse{}, apperr.NotFoundf("report %d", id)
			}
			return dto.ReportResponse{}, apperr.FromStore(err)
		}
		if report.ReviewFeedback != nil {
			return dto.ReportResponse{}, apperr.Validationf("report %d already has review feedback", id)
		}
		return dto.ReportResponse{}, apperr.Unavailablef("review of report %d could not be applied", id)
	}

	s.logger.Info().
		Uint("report_id", id).
		Uint("reviewer_id", actor.ID).
		Msg("report reviewed")

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ReportResponse{}, apperr.FromStore(err)
	}

	return dto.NewReportResponse(report), nil
}

func (s *reportService) SetReviewerRating(ctx context.Context, actor models.Actor, id uint, payload dto.ReviewerRatingRequest) (dto.ReportResponse, error) {
	if actor.Role != models.RolePrincipalLecturer {
		return dto.ReportResponse{}, apperr.Forbiddenf("only principal lecturers may rate reports")
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.ReportResponse{}, apperr.Validationf("%v", err)
	}

	updated, err := s.repo.SetReviewerRating(ctx, id, actor.ID, payload.Rating)
	if err != nil {
		return dto.ReportResponse{}, apperr.FromStore(err)
	}
	if !updated {
		return dto.ReportResponse{}, apperr.NotFoundf("report %d", id)
	}

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ReportResponse{}, apperr.FromStore(err)
	}

	return dto.NewReportResponse(report), nil
}

// visibleReport fetches a report and applies the same visibility rule as
// listings: a lecturer asking for someone else's report gets not-found rather
// than a hint that it exists.
func (s *reportService) visibleReport(ctx context.Context, actor models.Actor, id uint) (models.Report, error) {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Report{}, apperr.NotFoundf("report %d", id)
		}
		return models.Report{}, apperr.FromStore(err)
	}

	if actor.Role == models.RoleLecturer && report.LecturerID != actor.ID {
		return models.Report{}, apperr.NotFoundf("report %d", id)
	}

	return report, nil
}
