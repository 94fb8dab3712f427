package dto

import (
	"fmt"

	"github.com/karabo-m/luct-reporting-api/internal/models"
)

// ReportExportRow is a fully-joined, display-ready report record handed to
// the CSV renderer.
type ReportExportRow struct {
	CourseCode      string
	CourseName      string
	ClassName       string
	Week            int
	Date            string
	Time            string
	Venue           string
	StudentsPresent int
	TotalRegistered int
	AttendanceRate  string
	Topic           string
	Outcomes        string
	Recommendations string
	Status          string
	LecturerName    string
	Feedback        string
	ReviewerName    string
}

// ExportHeaders returns the CSV column headers in record order.
func ExportHeaders() []string {
	return []string{
		"Course Code", "Course Name", "Class Name", "Week", "Date", "Time",
		"Venue", "Students Present", "Total Students", "Attendance Rate",
		"Topic", "Learning Outcomes", "Recommendations", "Status", "Lecturer",
		"Feedback", "Reviewer",
	}
}

// Record serializes the row in header order.
func (r ReportExportRow) Record() []string {
	return []string{
		r.CourseCode, r.CourseName, r.ClassName, fmt.Sprintf("%d", r.Week),
		r.Date, r.Time, r.Venue, fmt.Sprintf("%d", r.StudentsPresent),
		fmt.Sprintf("%d", r.TotalRegistered), r.AttendanceRate, r.Topic,
		r.Outcomes, r.Recommendations, r.Status, r.LecturerName, r.Feedback,
		r.ReviewerName,
	}
}

// NewReportExportRow projects a report model into an export row.
func NewReportExportRow(report models.Report) ReportExportRow {
	row := ReportExportRow{
		CourseCode:      report.CourseCode,
		CourseName:      report.CourseName,
		ClassName:       report.ClassName,
		Week:            report.WeekOfReporting,
		Date:            report.DateOfLecture.Format("2006-01-02"),
		Time:            report.ScheduledTime,
		Venue:           report.Venue,
		StudentsPresent: report.StudentsPresent,
		TotalRegistered: report.TotalRegistered,
		Topic:           report.TopicTaught,
		Outcomes:        report.LearningOutcome,
		Recommendations: report.Recommendations,
		Status:          string(report.Status),
		LecturerName:    report.Lecturer.Name,
		Feedback:        "N/A",
		ReviewerName:    "N/A",
	}

	if report.TotalRegistered > 0 {
		rate := float64(report.StudentsPresent) / float64(report.TotalRegistered) * 100
		row.AttendanceRate = fmt.Sprintf("%.1f%%", rate)
	}
	if report.ReviewFeedback != nil {
		row.Feedback = *report.ReviewFeedback
	}
	if report.Reviewer != nil {
		row.ReviewerName = report.Reviewer.Name
	}

	return row
}
