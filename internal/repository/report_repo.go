package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/karabo-m/luct-reporting-api/internal/models"
)

// ReportFilter scopes report listings. Nil fields match everything.
type ReportFilter struct {
	LecturerID *uint
	Status     *models.ReportStatus
}

// ReportRepository defines persistence operations for class reports. Reads
// return already-joined aggregates (lecturer and reviewer preloaded) so the
// core never stitches related rows together in memory.
type ReportRepository interface {
	List(ctx context.Context, filter ReportFilter) ([]models.Report, error)
	ListRecent(ctx context.Context, filter ReportFilter, limit int) ([]models.Report, error)
	GetByID(ctx context.Context, id uint) (models.Report, error)
	Create(ctx context.Context, report *models.Report) error
	Annotate(ctx context.Context, id, reviewerID uint, feedback string, rating *int) (bool, error)
	SetReviewerRating(ctx context.Context, id, reviewerID uint, rating int) (bool, error)
	Count(ctx context.Context, filter ReportFilter) (int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository instantiates a GORM-backed repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) scoped(ctx context.Context, filter ReportFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Report{})
	if filter.LecturerID != nil {
		query = query.Where("lecturer_id = ?", *filter.LecturerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	return query
}

func (r *reportRepository) List(ctx context.Context, filter ReportFilter) ([]models.Report, error) {
	var reports []models.Report
	err := r.scoped(ctx, filter).
		Preload("Lecturer").
		Preload("Reviewer").
		Order("date_of_lecture DESC, created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *reportRepository) ListRecent(ctx context.Context, filter ReportFilter, limit int) ([]models.Report, error) {
	var reports []models.Report
	err := r.scoped(ctx, filter).
		Preload("Lecturer").
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error
	if err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *reportRepository) GetByID(ctx context.Context, id uint) (models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).
		Preload("Lecturer").
		Preload("Reviewer").
		First(&report, id).Error
	if err != nil {
		return models.Report{}, err
	}

	return report, nil
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// Annotate applies the review transition as a single UPDATE guarded on
// feedback still being unset, so status, reviewer reference and feedback can
// never be observed half-applied and a concurrent second review loses cleanly.
func (r *reportRepository) Annotate(ctx context.Context, id, reviewerID uint, feedback string, rating *int) (bool, error) {
	updates := map[string]interface{}{
		"reviewer_id":     reviewerID,
		"review_feedback": feedback,
		"status":          models.StatusReviewed,
	}
	if rating != nil {
		updates["reviewer_rating"] = *rating
	}

	result := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ? AND review_feedback IS NULL", id).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// SetReviewerRating updates only the reviewer rating; repeatable by design.
func (r *reportRepository) SetReviewerRating(ctx context.Context, id, reviewerID uint, rating int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"reviewer_rating": rating})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *reportRepository) Count(ctx context.Context, filter ReportFilter) (int64, error) {
	var count int64
	err := r.scoped(ctx, filter).Count(&count).Error
	return count, err
}
