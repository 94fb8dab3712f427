package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/karabo-m/luct-reporting-api/internal/models"
)

// AssignmentFilter scopes assignment listings. Nil fields match everything.
type AssignmentFilter struct {
	LecturerID *uint
	Program    *models.ProgramType
}

// AssignmentRepository defines persistence operations for course assignments.
type AssignmentRepository interface {
	List(ctx context.Context, filter AssignmentFilter) ([]models.CourseAssignment, error)
	GetByID(ctx context.Context, id uint) (models.CourseAssignment, error)
	Create(ctx context.Context, assignment *models.CourseAssignment) error
	Delete(ctx context.Context, id uint) error
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository instantiates a GORM-backed repository.
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) List(ctx context.Context, filter AssignmentFilter) ([]models.CourseAssignment, error) {
	query := r.db.WithContext(ctx).
		Preload("Lecturer").
		Preload("AssignedBy").
		Order("created_at DESC")

	if filter.LecturerID != nil {
		query = query.Where("lecturer_id = ?", *filter.LecturerID)
	}
	if filter.Program != nil {
		query = query.Where("program = ?", *filter.Program)
	}

	var assignments []models.CourseAssignment
	if err := query.Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, id uint) (models.CourseAssignment, error) {
	var assignment models.CourseAssignment
	err := r.db.WithContext(ctx).
		Preload("Lecturer").
		Preload("AssignedBy").
		First(&assignment, id).Error
	if err != nil {
		return models.CourseAssignment{}, err
	}

	return assignment, nil
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.CourseAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CourseAssignment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
