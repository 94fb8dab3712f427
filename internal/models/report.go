package models

import "time"

// ReportStatus is the report lifecycle state. A report is born submitted and
// moves to reviewed exactly once; the transition is terminal.
type ReportStatus string

const (
	StatusSubmitted ReportStatus = "submitted"
	StatusReviewed  ReportStatus = "reviewed"
)

// Valid reports whether the status is a known lifecycle state.
func (s ReportStatus) Valid() bool {
	return s == StatusSubmitted || s == StatusReviewed
}

// Report is a single lecture's attendance/content/outcome record. Content
// fields are written once by the authoring lecturer; only the reviewer
// annotation fields and status mutate afterwards, and only through the review
// transition. StudentsPresent may exceed TotalRegistered; both must merely be
// positive.
type Report struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	LecturerID      uint         `gorm:"not null;index" json:"lecturer_id"`
	Lecturer        User         `json:"-"`
	FacultyName     string       `gorm:"size:255;not null" json:"faculty_name"`
	ClassName       string       `gorm:"size:255;not null" json:"class_name"`
	CourseCode      string       `gorm:"size:32;not null;index" json:"course_code"`
	CourseName      string       `gorm:"size:255;not null" json:"course_name"`
	Stream          Stream       `gorm:"size:64;not null" json:"stream"`
	Program         ProgramType  `gorm:"size:16;not null" json:"program_type"`
	AcademicYear    string       `gorm:"size:16;not null" json:"academic_year"`
	Semester        string       `gorm:"size:4;not null" json:"semester"`
	WeekOfReporting int          `gorm:"not null" json:"week_of_reporting"`
	DateOfLecture   time.Time    `gorm:"not null;index" json:"date_of_lecture"`
	ScheduledTime   string       `gorm:"size:16;not null" json:"scheduled_time"`
	Venue           string       `gorm:"size:255;not null" json:"venue"`
	StudentsPresent int          `gorm:"not null" json:"actual_students_present"`
	TotalRegistered int          `gorm:"not null" json:"total_registered_students"`
	TopicTaught     string       `gorm:"type:text;not null" json:"topic_taught"`
	LearningOutcome string       `gorm:"type:text;not null" json:"learning_outcomes"`
	Recommendations string       `gorm:"type:text;not null" json:"recommendations"`
	SelfRating      *int         `json:"self_rating"`
	ReviewerID      *uint        `gorm:"index" json:"reviewer_id"`
	Reviewer        *User        `json:"-"`
	ReviewerRating  *int         `json:"reviewer_rating"`
	ReviewFeedback  *string      `gorm:"type:text" json:"review_feedback"`
	Status          ReportStatus `gorm:"size:16;not null;default:'submitted'" json:"status"`
	CreatedAt       time.Time    `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// Reviewed reports whether the review transition has been applied.
func (r Report) Reviewed() bool {
	return r.Status == StatusReviewed
}
