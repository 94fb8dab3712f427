package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/karabo-m/luct-reporting-api/internal/apperr"
	"github.com/karabo-m/luct-reporting-api/internal/dto"
	"github.com/karabo-m/luct-reporting-api/internal/models"
	"github.com/karabo-m/luct-reporting-api/internal/repository"
)

// RatingService attaches student ratings to reports. One rating per
// (report, student): re-rating overwrites.
type RatingService interface {
	Rate(ctx context.Context, actor models.Actor, reportID uint, payload dto.RatingRequest) (dto.UserRatingResponse, error)
	UserRating(ctx context.Context, actor models.Actor, reportID uint) (dto.UserRatingResponse, error)
	Average(ctx context.Context, reportID uint) (dto.RatingAverageResponse, error)
}

type ratingService struct {
	ratings repository.RatingRepository
	reports repository.ReportRepository
	logger  zerolog.Logger
}

// NewRatingService builds a new rating service.
func NewRatingService(ratings repository.RatingRepository, reports repository.ReportRepository, logger zerolog.Logger) RatingService {
	return &ratingService{
		ratings: ratings,
		reports: reports,
		logger:  logger.With().Str("component", "rating_service").Logger(),
	}
}

func (s *ratingService) Rate(ctx context.Context, actor models.Actor, reportID uint, payload dto.RatingRequest) (dto.UserRatingResponse, error) {
	if actor.Role != models.RoleStudent {
		return dto.UserRatingResponse{}, apperr.Forbiddenf("only students may rate classes")
	}

	if payload.Value < 1 || payload.Value > 5 {
		return dto.UserRatingResponse{}, apperr.Validationf("rating must be between 1 and 5")
	}

	if _, err := s.reports.GetByID(ctx, reportID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserRatingResponse{}, apperr.NotFoundf("report %d", reportID)
		}
		return dto.UserRatingResponse{}, apperr.FromStore(err)
	}

	rating := models.Rating{
		ReportID:  reportID,
		StudentID: actor.ID,
		Value:     payload.Value,
	}
	if err := s.ratings.Upsert(ctx, &rating); err != nil {
		return dto.UserRatingResponse{}, apperr.FromStore(err)
	}

	s.logger.Info().
		Uint("report_id", reportID).
		Uint("student_id", actor.ID).
		Int("value", payload.Value).
		Msg("class rated")

	return dto.UserRatingResponse{Rated: true, Value: payload.Value}, nil
}

func (s *ratingService) UserRating(ctx context.Context, actor models.Actor, reportID uint) (dto.UserRatingResponse, error) {
	rating, err := s.ratings.GetByReportAndStudent(ctx, reportID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Absence is a sentinel, not an error.
			return dto.UserRatingResponse{Rated: false}, nil
		}
		return dto.UserRatingResponse{}, apperr.FromStore(err)
	}

	return dto.UserRatingResponse{Rated: true, Value: rating.Value}, nil
}

func (s *ratingService) Average(ctx context.Context, reportID uint) (dto.RatingAverageResponse, error) {
	aggregate, err := s.ratings.Aggregate(ctx, reportID)
	if err != nil {
		return dto.RatingAverageResponse{}, apperr.FromStore(err)
	}

	response := dto.RatingAverageResponse{Count: aggregate.Count}
	if aggregate.Count > 0 {
		average := aggregate.Average
		response.Average = &average
	}

	return response, nil
}
