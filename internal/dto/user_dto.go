package dto

import (
	"time"

	"github.com/karabo-m/luct-reporting-api/internal/models"
)

// UserResponse is the serialized account representation.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Stream    string    `json:"stream"`
	Program   string    `json:"program_type"`
	CreatedAt time.Time `json:"created_at"`
}

// UserUpdateRequest describes the admin edit payload. Email and ID are
// immutable and deliberately absent.
type UserUpdateRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2"`
	Role    *string `json:"role" validate:"omitempty"`
	Stream  *string `json:"stream" validate:"omitempty"`
	Program *string `json:"program_type" validate:"omitempty"`
}

// NewUserResponse converts a model into a DTO.
func NewUserResponse(model models.User) UserResponse {
	return UserResponse{
		ID:        model.ID,
		Email:     model.Email,
		Name:      model.Name,
		Role:      string(model.Role),
		Stream:    string(model.Stream),
		Program:   string(model.Program),
		CreatedAt: model.CreatedAt,
	}
}

// NewUserResponseSlice converts a slice of models into DTOs.
func NewUserResponseSlice(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}

	return responses
}
