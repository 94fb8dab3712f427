package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/karabo-m/luct-reporting-api/internal/models"
)

// RatingAggregate carries the read-time mean over a report's ratings.
type RatingAggregate struct {
	Average float64
	Count   int64
}

// RatingRepository defines persistence operations for student ratings.
type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	GetByReportAndStudent(ctx context.Context, reportID, studentID uint) (models.Rating, error)
	Aggregate(ctx context.Context, reportID uint) (RatingAggregate, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository instantiates a GORM-backed repository.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert writes the rating keyed on (report_id, student_id). The unique index
// resolves concurrent writes for the same pair: the store keeps one row and
// the last write wins.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "report_id"}, {Name: "student_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(rating).Error
}

func (r *ratingRepository) GetByReportAndStudent(ctx context.Context, reportID, studentID uint) (models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("report_id = ? AND student_id = ?", reportID, studentID).
		First(&rating).Error
	if err != nil {
		return models.Rating{}, err
	}

	return rating, nil
}

func (r *ratingRepository) Aggregate(ctx context.Context, reportID uint) (RatingAggregate, error) {
	var row struct {
		Average *float64
		Count   int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("AVG(value) AS average, COUNT(*) AS count").
		Where("report_id = ?", reportID).
		Scan(&row).Error
	if err != nil {
		return RatingAggregate{}, err
	}

	aggregate := RatingAggregate{Count: row.Count}
	if row.Average != nil {
		aggregate.Average = *row.Average
	}

	return aggregate, nil
}
