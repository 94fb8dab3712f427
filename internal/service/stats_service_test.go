package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/karabo-m/luct-reporting-api/internal/models"
)

func TestCountByStatusSkipsAbsentStatuses(t *testing.T) {
	reports := []models.Report{
		{Status: models.StatusSubmitted},
		{Status: models.StatusSubmitted},
		{Status: models.StatusReviewed},
	}

	counts := countByStatus(reports)
	require.Equal(t, int64(2), counts[string(models.StatusSubmitted)])
	require.Equal(t, int64(1), counts[string(models.StatusReviewed)])
	require.Len(t, counts, 2)

	require.Empty(t, countByStatus(nil))
}

func TestCountByCourseUsesCompositeKey(t *testing.T) {
	reports := []models.Report{
		{CourseCode: "DIWA2110", CourseName: "Web Application Development"},
		{CourseCode: "DIWA2110", CourseName: "Web Application Development"},
		{CourseCode: "BIDC2110", CourseName: "Data Communications"},
	}

	counts := countByCourse(reports)
	require.Equal(t, int64(2), counts["DIWA2110 - Web Application Development"])
	require.Equal(t, int64(1), counts["BIDC2110 - Data Communications"])
}

func TestStatsServiceSummaryScopesLecturer(t *testing.T) {
	reports := newMemoryReportRepo()
	users := newMemoryUserRepo()
	users.mustCreate(models.User{Email: "t@luct.ac.ls", Name: "Thabo", Role: models.RoleLecturer})
	users.mustCreate(models.User{Email: "n@luct.ac.ls", Name: "Neo", Role: models.RoleLecturer})

	mine := models.Report{LecturerID: 1, CourseCode: "DIWA2110", CourseName: "Web Application Development", Status: models.StatusSubmitted}
	require.NoError(t, reports.Create(context.Background(), &mine))
	theirs := models.Report{LecturerID: 2, CourseCode: "BIDC2110", CourseName: "Data Communications", Status: models.StatusReviewed}
	require.NoError(t, reports.Create(context.Background(), &theirs))

	svc := NewStatsService(reports, users, 5, testLogger())

	summary, err := svc.Summary(context.Background(), models.Actor{ID: 1, Role: models.RoleLecturer})
	require.NoError(t, err)
	require.Equal(t, int64(1), summary.TotalReports)
	require.Equal(t, int64(2), summary.TotalUsers)
	require.Equal(t, int64(1), summary.ReportsByStatus[string(models.StatusSubmitted)])
	require.NotContains(t, summary.ReportsByStatus, string(models.StatusReviewed))

	admin, err := svc.Summary(context.Background(), models.Actor{ID: 3, Role: models.RoleAdmin})
	require.NoError(t, err)
	require.Equal(t, int64(2), admin.TotalReports)
	require.Len(t, admin.ReportsByCourse, 2)
}

func TestStatsServiceSummaryRecentActivity(t *testing.T) {
	reports := newMemoryReportRepo()
	users := newMemoryUserRepo()
	lecturer := users.mustCreate(models.User{Email: "t@luct.ac.ls", Name: "Thabo", Role: models.RoleLecturer})
	reports.users[lecturer.ID] = lecturer

	for i := 0; i < 7; i++ {
		report := models.Report{LecturerID: lecturer.ID, CourseCode: "DIWA2110", CourseName: "Web Application Development", ClassName: "BIT2A", Status: models.StatusSubmitted}
		require.NoError(t, reports.Create(context.Background(), &report))
		// Spread creation times so the recency order is unambiguous.
		stored := reports.reports[report.ID]
		stored.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		reports.reports[report.ID] = stored
	}

	svc := NewStatsService(reports, users, 5, testLogger())

	summary, err := svc.Summary(context.Background(), models.Actor{ID: 9, Role: models.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, summary.RecentActivity, 5)
	require.Equal(t, "Thabo", summary.RecentActivity[0].LecturerName)
	for i := 1; i < len(summary.RecentActivity); i++ {
		require.True(t, !summary.RecentActivity[i].CreatedAt.After(summary.RecentActivity[i-1].CreatedAt), "recent activity must be newest first")
	}
	require.False(t, summary.GeneratedAt.IsZero())
}
