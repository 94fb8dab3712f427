package dto

import "time"

// StatsSummaryResponse aggregates portal-wide statistics, scoped to what the
// requesting actor may see. Recomputed fully on every request; there is no
// cached copy to go stale.
type StatsSummaryResponse struct {
	TotalUsers      int64            `json:"total_users"`
	TotalReports    int64            `json:"total_reports"`
	ReportsByStatus map[string]int64 `json:"reports_by_status"`
	ReportsByCourse map[string]int64 `json:"reports_by_course"`
	RecentActivity  []RecentReport   `json:"recent_activity"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// RecentReport is a compact view of a recently created report.
type RecentReport struct {
	ID           uint      `json:"id"`
	CourseCode   string    `json:"course_code"`
	ClassName    string    `json:"class_name"`
	LecturerName string    `json:"lecturer_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
