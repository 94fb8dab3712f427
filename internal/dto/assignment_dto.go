package dto

import (
	"time"

	"github.com/karabo-m/luct-reporting-api/internal/models"
)

// AssignmentCreateRequest describes the payload for assigning a course to a
// lecturer. ProgramType is optional for program leaders, whose own program
// type is enforced regardless.
type AssignmentCreateRequest struct {
	CourseCode   string `json:"course_code" validate:"required,min=2"`
	CourseName   string `json:"course_name" validate:"required,min=2"`
	LecturerID   uint   `json:"lecturer_id" validate:"required"`
	Stream       string `json:"stream" validate:"required"`
	ProgramType  string `json:"program_type" validate:"omitempty"`
	AcademicYear string `json:"academic_year" validate:"required,len=4,numeric"`
	Semester     string `json:"semester" validate:"required,oneof=1 2"`
}

// AssignmentResponse is the serialized assignment with joined user names.
type AssignmentResponse struct {
	ID           uint      `json:"id"`
	CourseCode   string    `json:"course_code"`
	CourseName   string    `json:"course_name"`
	LecturerID   uint      `json:"lecturer_id"`
	LecturerName string    `json:"lecturer_name"`
	Stream       string    `json:"stream"`
	ProgramType  string    `json:"program_type"`
	AcademicYear string    `json:"academic_year"`
	Semester     string    `json:"semester"`
	AssignedBy   string    `json:"assigned_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewAssignmentResponse converts a model into a DTO.
func NewAssignmentResponse(model models.CourseAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:           model.ID,
		CourseCode:   model.CourseCode,
		CourseName:   model.CourseName,
		LecturerID:   model.LecturerID,
		LecturerName: model.Lecturer.Name,
		Stream:       string(model.Stream),
		ProgramType:  string(model.Program),
		AcademicYear: model.AcademicYear,
		Semester:     model.Semester,
		AssignedBy:   model.AssignedBy.Name,
		CreatedAt:    model.CreatedAt,
	}
}

// NewAssignmentResponseSlice converts a slice of models into DTOs.
func NewAssignmentResponseSlice(assignments []models.CourseAssignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, NewAssignmentResponse(assignment))
	}

	return responses
}
