package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/karabo-m/luct-reporting-api/internal/models"
	"github.com/karabo-m/luct-reporting-api/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

type memoryUserRepo struct {
	users  map[uint]models.User
	nextID uint
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uint]models.User), nextID: 1}
}

func (m *memoryUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	m.users[m.nextID] = *user
	m.nextID++
	return nil
}

func (m *memoryUserRepo) GetByID(ctx context.Context, id uint) (models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *memoryUserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (m *memoryUserRepo) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (m *memoryUserRepo) Update(ctx context.Context, user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	user.UpdatedAt = time.Now()
	m.users[user.ID] = *user
	return nil
}

func (m *memoryUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *memoryUserRepo) mustCreate(user models.User) models.User {
	_ = m.Create(context.Background(), &user)
	return user
}

type memoryReportRepo struct {
	reports map[uint]models.Report
	users   map[uint]models.User
	nextID  uint
}

func newMemoryReportRepo() *memoryReportRepo {
	return &memoryReportRepo{
		reports: make(map[uint]models.Report),
		users:   make(map[uint]models.User),
		nextID:  1,
	}
}

func (m *memoryReportRepo) join(report models.Report) models.Report {
	if user, ok := m.users[report.LecturerID]; ok {
		report.Lecturer = user
	}
	if report.ReviewerID != nil {
		if user, ok := m.users[*report.ReviewerID]; ok {
			reviewer := user
			report.Reviewer = &reviewer
		}
	}
	return report
}

func (m *memoryReportRepo) matches(report models.Report, filter repository.ReportFilter) bool {
	if filter.LecturerID != nil && report.LecturerID != *filter.LecturerID {
		return false
	}
	if filter.Status != nil && report.Status != *filter.Status {
		return false
	}
	return true
}

func (m *memoryReportRepo) List(ctx context.Context, filter repository.ReportFilter) ([]models.Report, error) {
	reports := make([]models.Report, 0, len(m.reports))
	for _, report := range m.reports {
		if m.matches(report, filter) {
			reports = append(reports, m.join(report))
		}
	}
	sort.Slice(reports, func(i, j int) bool {
		if !reports[i].DateOfLecture.Equal(reports[j].DateOfLecture) {
			return reports[i].DateOfLecture.After(reports[j].DateOfLecture)
		}
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}

func (m *memoryReportRepo) ListRecent(ctx context.Context, filter repository.ReportFilter, limit int) ([]models.Report, error) {
	reports := make([]models.Report, 0, len(m.reports))
	for _, report := range m.reports {
		if m.matches(report, filter) {
			reports = append(reports, m.join(report))
		}
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

func (m *memoryReportRepo) GetByID(ctx context.Context, id uint) (models.Report, error) {
	report, ok := m.reports[id]
	if !ok {
		return models.Report{}, gorm.ErrRecordNotFound
	}
	return m.join(report), nil
}

func (m *memoryReportRepo) Create(ctx context.Context, report *models.Report) error {
	report.ID = m.nextID
	report.CreatedAt = time.Now()
	report.UpdatedAt = time.Now()
	m.reports[m.nextID] = *report
	m.nextID++
	return nil
}

func (m *memoryReportRepo) Annotate(ctx context.Context, id, reviewerID uint, feedback string, rating *int) (bool, error) {
	report, ok := m.reports[id]
	if !ok || report.ReviewFeedback != nil {
		return false, nil
	}
	report.ReviewerID = &reviewerID
	report.ReviewFeedback = &feedback
	report.Status = models.StatusReviewed
	if rating != nil {
		value := *rating
		report.ReviewerRating = &value
	}
	report.UpdatedAt = time.Now()
	m.reports[id] = report
	return true, nil
}

func (m *memoryReportRepo) SetReviewerRating(ctx context.Context, id, reviewerID uint, rating int) (bool, error) {
	report, ok := m.reports[id]
	if !ok {
		return false, nil
	}
	report.ReviewerRating = &rating
	report.UpdatedAt = time.Now()
	m.reports[id] = report
	return true, nil
}

func (m *memoryReportRepo) Count(ctx context.Context, filter repository.ReportFilter) (int64, error) {
	var count int64
	for _, report := range m.reports {
		if m.matches(report, filter) {
			count++
		}
	}
	return count, nil
}

type ratingKey struct {
	reportID  uint
	studentID uint
}

type memoryRatingRepo struct {
	ratings map[ratingKey]models.Rating
	nextID  uint
}

func newMemoryRatingRepo() *memoryRatingRepo {
	return &memoryRatingRepo{ratings: make(map[ratingKey]models.Rating), nextID: 1}
}

func (m *memoryRatingRepo) Upsert(ctx context.Context, rating *models.Rating) error {
	key := ratingKey{reportID: rating.ReportID, studentID: rating.StudentID}
	if existing, ok := m.ratings[key]; ok {
		existing.Value = rating.Value
		existing.UpdatedAt = time.Now()
		m.ratings[key] = existing
		rating.ID = existing.ID
		return nil
	}
	rating.ID = m.nextID
	rating.CreatedAt = time.Now()
	rating.UpdatedAt = time.Now()
	m.ratings[key] = *rating
	m.nextID++
	return nil
}

func (m *memoryRatingRepo) GetByReportAndStudent(ctx context.Context, reportID, studentID uint) (models.Rating, error) {
	rating, ok := m.ratings[ratingKey{reportID: reportID, studentID: studentID}]
	if !ok {
		return models.Rating{}, gorm.ErrRecordNotFound
	}
	return rating, nil
}

func (m *memoryRatingRepo) Aggregate(ctx context.Context, reportID uint) (repository.RatingAggregate, error) {
	var sum int
	var count int64
	for key, rating := range m.ratings {
		if key.reportID == reportID {
			sum += rating.Value
			count++
		}
	}
	aggregate := repository.RatingAggregate{Count: count}
	if count > 0 {
		aggregate.Average = float64(sum) / float64(count)
	}
	return aggregate, nil
}

type memoryAssignmentRepo struct {
	assignments map[uint]models.CourseAssignment
	users       map[uint]models.User
	nextID      uint
}

func newMemoryAssignmentRepo() *memoryAssignmentRepo {
	return &memoryAssignmentRepo{
		assignments: make(map[uint]models.CourseAssignment),
		users:       make(map[uint]models.User),
		nextID:      1,
	}
}

func (m *memoryAssignmentRepo) join(assignment models.CourseAssignment) models.CourseAssignment {
	if user, ok := m.users[assignment.LecturerID]; ok {
		assignment.Lecturer = user
	}
	if user, ok := m.users[assignment.AssignedByID]; ok {
		assignment.AssignedBy = user
	}
	return assignment
}

func (m *memoryAssignmentRepo) List(ctx context.Context, filter repository.AssignmentFilter) ([]models.CourseAssignment, error) {
	assignments := make([]models.CourseAssignment, 0, len(m.assignments))
	for _, assignment := range m.assignments {
		if filter.LecturerID != nil && assignment.LecturerID != *filter.LecturerID {
			continue
		}
		if filter.Program != nil && assignment.Program != *filter.Program {
			continue
		}
		assignments = append(assignments, m.join(assignment))
	}
	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].CreatedAt.After(assignments[j].CreatedAt)
	})
	return assignments, nil
}

func (m *memoryAssignmentRepo) GetByID(ctx context.Context, id uint) (models.CourseAssignment, error) {
	assignment, ok := m.assignments[id]
	if !ok {
		return models.CourseAssignment{}, gorm.ErrRecordNotFound
	}
	return m.join(assignment), nil
}

func (m *memoryAssignmentRepo) Create(ctx context.Context, assignment *models.CourseAssignment) error {
	assignment.ID = m.nextID
	assignment.CreatedAt = time.Now()
	m.assignments[m.nextID] = *assignment
	m.nextID++
	return nil
}

func (m *memoryAssignmentRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.assignments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.assignments, id)
	return nil
}
