package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/karabo-m/luct-reporting-api/internal/models"
)

func TestRatingRepositoryUpsertKeepsOneRowPerStudent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	lecturer := seedUser(t, db, "thabo", models.RoleLecturer)
	student := seedUser(t, db, "sello", models.RoleStudent)
	report := seedReportRow(t, db, lecturer.ID, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))

	first := models.Rating{ReportID: report.ID, StudentID: student.ID, Value: 3}
	require.NoError(t, repo.Upsert(context.Background(), &first))

	second := models.Rating{ReportID: report.ID, StudentID: student.ID, Value: 5}
	require.NoError(t, repo.Upsert(context.Background(), &second))

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Where("report_id = ?", report.ID).Count(&count).Error)
	require.Equal(t, int64(1), count, "re-rating must overwrite, not add a row")

	stored, err := repo.GetByReportAndStudent(context.Background(), report.ID, student.ID)
	require.NoError(t, err)
	require.Equal(t, 5, stored.Value)
}

func TestRatingRepositoryAggregate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	lecturer := seedUser(t, db, "thabo", models.RoleLecturer)
	report := seedReportRow(t, db, lecturer.ID, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))

	empty, err := repo.Aggregate(context.Background(), report.ID)
	require.NoError(t, err)
	require.Zero(t, empty.Count)

	low := seedUser(t, db, "sello", models.RoleStudent)
	high := seedUser(t, db, "neo", models.RoleStudent)
	require.NoError(t, repo.Upsert(context.Background(), &models.Rating{ReportID: report.ID, StudentID: low.ID, Value: 1}))
	require.NoError(t, repo.Upsert(context.Background(), &models.Rating{ReportID: report.ID, StudentID: high.ID, Value: 5}))

	aggregate, err := repo.Aggregate(context.Background(), report.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), aggregate.Count)
	require.InDelta(t, 3.0, aggregate.Average, 0.0001)

	// Ratings for other reports never bleed into the aggregate.
	other := seedReportRow(t, db, lecturer.ID, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Upsert(context.Background(), &models.Rating{ReportID: other.ID, StudentID: low.ID, Value: 2}))

	aggregate, err = repo.Aggregate(context.Background(), report.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), aggregate.Count)
}
