package models

import "time"

// Rating is a student's 1–5 evaluation of a report. The composite unique
// index on (report_id, student_id) makes re-rating an overwrite, never a
// second row, even under concurrent upserts.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReportID  uint      `gorm:"not null;uniqueIndex:idx_report_student" json:"report_id"`
	StudentID uint      `gorm:"not null;uniqueIndex:idx_report_student" json:"student_id"`
	Value     int       `gorm:"not null" json:"rating_value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
