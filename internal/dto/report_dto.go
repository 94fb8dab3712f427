package dto

import (
	"time"

	"github.com/karabo-m/luct-reporting-api/internal/models"
)

// ReportCreateRequest is the full field set a report author submits. There is
// no draft state: a valid create lands as a submitted report.
type ReportCreateRequest struct {
	FacultyName     string `json:"faculty_name" validate:"required,min=2"`
	ClassName       string `json:"class_name" validate:"required,min=2"`
	CourseCode      string `json:"course_code" validate:"required,min=2"`
	CourseName      string `json:"course_name" validate:"required,min=2"`
	Stream          string `json:"stream" validate:"required"`
	ProgramType     string `json:"program_type" validate:"required"`
	AcademicYear    string `json:"academic_year" validate:"required,len=4,numeric"`
	Semester        string `json:"semester" validate:"required,oneof=1 2"`
	WeekOfReporting int    `json:"week_of_reporting" validate:"required,min=1,max=52"`
	DateOfLecture   string `json:"date_of_lecture" validate:"required,datetime=2006-01-02"`
	ScheduledTime   string `json:"scheduled_time" validate:"required"`
	Venue           string `json:"venue" validate:"required"`
	StudentsPresent int    `json:"actual_students_present" validate:"required,gt=0"`
	TotalRegistered int    `json:"total_registered_students" validate:"required,gt=0"`
	TopicTaught     string `json:"topic_taught" validate:"required"`
	LearningOutcome string `json:"learning_outcomes" validate:"required"`
	Recommendations string `json:"recommendations" validate:"required"`
	SelfRating      *int   `json:"self_rating" validate:"omitempty,min=1,max=5"`
}

// ReviewRequest is the principal lecturer's annotation payload.
type ReviewRequest struct {
	Feedback string `json:"feedback" validate:"required,min=2"`
	Rating   *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

// ReviewerRatingRequest updates only the reviewer rating; unlike feedback it
// may be set repeatedly.
type ReviewerRatingRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// ReportResponse is the serialized report with joined user names.
type ReportResponse struct {
	ID              uint      `json:"id"`
	LecturerID      uint      `json:"lecturer_id"`
	LecturerName    string    `json:"lecturer_name"`
	FacultyName     string    `json:"faculty_name"`
	ClassName       string    `json:"class_name"`
	CourseCode      string    `json:"course_code"`
	CourseName      string    `json:"course_name"`
	Stream          string    `json:"stream"`
	ProgramType     string    `json:"program_type"`
	AcademicYear    string    `json:"academic_year"`
	Semester        string    `json:"semester"`
	WeekOfReporting int       `json:"week_of_reporting"`
	DateOfLecture   time.Time `json:"date_of_lecture"`
	ScheduledTime   string    `json:"scheduled_time"`
	Venue           string    `json:"venue"`
	StudentsPresent int       `json:"actual_students_present"`
	TotalRegistered int       `json:"total_registered_students"`
	TopicTaught     string    `json:"topic_taught"`
	LearningOutcome string    `json:"learning_outcomes"`
	Recommendations string    `json:"recommendations"`
	SelfRating      *int      `json:"self_rating"`
	ReviewerID      *uint     `json:"reviewer_id"`
	ReviewerName    string    `json:"reviewer_name,omitempty"`
	ReviewerRating  *int      `json:"reviewer_rating"`
	ReviewFeedback  *string   `json:"review_feedback"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewReportResponse converts a model into a DTO.
func NewReportResponse(model models.Report) ReportResponse {
	response := ReportResponse{
		ID:              model.ID,
		LecturerID:      model.LecturerID,
		LecturerName:    model.Lecturer.Name,
		FacultyName:     model.FacultyName,
		ClassName:       model.ClassName,
		CourseCode:      model.CourseCode,
		CourseName:      model.CourseName,
		Stream:          string(model.Stream),
		ProgramType:     string(model.Program),
		AcademicYear:    model.AcademicYear,
		Semester:        model.Semester,
		WeekOfReporting: model.WeekOfReporting,
		DateOfLecture:   model.DateOfLecture,
		ScheduledTime:   model.ScheduledTime,
		Venue:           model.Venue,
		StudentsPresent: model.StudentsPresent,
		TotalRegistered: model.TotalRegistered,
		TopicTaught:     model.TopicTaught,
		LearningOutcome: model.LearningOutcome,
		Recommendations: model.Recommendations,
		SelfRating:      model.SelfRating,
		ReviewerID:      model.ReviewerID,
		ReviewerRating:  model.ReviewerRating,
		ReviewFeedback:  model.ReviewFeedback,
		Status:          string(model.Status),
		CreatedAt:       model.CreatedAt,
	}

	if model.Reviewer != nil {
		response.ReviewerName = model.Reviewer.Name
	}

	return response
}

// NewReportResponseSlice converts a slice of models into DTOs.
func NewReportResponseSlice(reports []models.Report) []ReportResponse {
	responses := make([]ReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, NewReportResponse(report))
	}

	return responses
}
