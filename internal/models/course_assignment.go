package models

import "time"

// CourseAssignment binds one lecturer to one course offering for one term.
// It is created by a leader role, read by lecturers to prefill report forms,
// and hard-deleted; there is no soft-delete state.
type CourseAssignment struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CourseCode   string      `gorm:"size:32;not null" json:"course_code"`
	CourseName   string      `gorm:"size:255;not null" json:"course_name"`
	LecturerID   uint        `gorm:"not null;index" json:"lecturer_id"`
	Lecturer     User        `json:"-"`
	Stream       Stream      `gorm:"size:64;not null" json:"stream"`
	Program      ProgramType `gorm:"size:16;not null" json:"program_type"`
	AcademicYear string      `gorm:"size:16;not null" json:"academic_year"`
	Semester     string      `gorm:"size:4;not null" json:"semester"`
	AssignedByID uint        `gorm:"not null" json:"assigned_by"`
	AssignedBy   User        `json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
