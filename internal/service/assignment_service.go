package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/karabo-m/luct-reporting-api/internal/apperr"
	"github.com/karabo-m/luct-reporting-api/internal/dto"
	"github.com/karabo-m/luct-reporting-api/internal/models"
	"github.com/karabo-m/luct-reporting-api/internal/repository"
)

// AssignmentService exposes the course assignment registry: leaders bind
// lecturers to course offerings, lecturers read their bindings to prefill
// report forms.
type AssignmentService interface {
	Create(ctx context.Context, actor models.Actor, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error)
	List(ctx context.Context, actor models.Actor) ([]dto.AssignmentResponse, error)
	Delete(ctx context.Context, actor models.Actor, id uint) error
}

type assignmentService struct {
	repo      repository.AssignmentRepository
	users     repository.UserRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAssignmentService builds a new assignment service.
func NewAssignmentService(repo repository.AssignmentRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		repo:      repo,
		users:     users,
		validator: validate,
		logger:    logger.With().Str("component", "assignment_service").Logger(),
	}
}

func (s *assignmentService) Create(ctx context.Context, actor models.Actor, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error) {
	switch actor.Role {
	case models.RoleProgramLeader, models.RoleAdmin:
	default:
		return dto.AssignmentResponse{}, apperr.Forbiddenf("role %q may not assign courses", actor.Role)
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, apperr.Validationf("%v", err)
	}

	stream := models.Stream(payload.Stream)
	if !stream.Valid() || stream == models.StreamNotApplicable {
		return dto.AssignmentResponse{}, apperr.Validationf("unknown stream %q", payload.Stream)
	}

	program, err := resolveProgramType(actor, payload.ProgramType)
	if err != nil {
		return dto.AssignmentResponse{}, err
	}

	lecturer, err := s.users.GetByID(ctx, payload.LecturerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, apperr.NotFoundf("lecturer %d", payload.LecturerID)
		}
		return dto.AssignmentResponse{}, apperr.FromStore(err)
	}

	switch lecturer.Role {
	case models.RoleLecturer, models.RolePrincipalLecturer:
	default:
		return dto.AssignmentResponse{}, apperr.Validationf("user %d is not a lecturer", lecturer.ID)
	}

	assignment := models.CourseAssignment{
		CourseCode:   strings.TrimSpace(payload.CourseCode),
		CourseName:   strings.TrimSpace(payload.CourseName),
		LecturerID:   lecturer.ID,
		Stream:       stream,
		Program:      program,
		AcademicYear: payload.AcademicYear,
		Semester:     payload.Semester,
		AssignedByID: actor.ID,
	}

	if err := s.repo.Create(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, apperr.FromStore(err)
	}

	s.logger.Info().
		Uint("assignment_id", assignment.ID).
		Str("course_code", assignment.CourseCode).
		Uint("lecturer_id", lecturer.ID).
		Msg("course assigned")

	created, err := s.repo.GetByID(ctx, assignment.ID)
	if err != nil {
		return dto.NewAssignmentResponse(assignment), nil
	}

	return dto.NewAssignmentResponse(created), nil
}

func (s *assignmentService) List(ctx context.Context, actor models.Actor) ([]dto.AssignmentResponse, error) {
	var filter repository.AssignmentFilter

	switch actor.Role {
	case models.RoleAdmin:
		// Full registry.
	case models.RoleProgramLeader:
		program := actor.Program
		filter.Program = &program
	case models.RoleLecturer, models.RolePrincipalLecturer:
		id := actor.ID
		filter.LecturerID = &id
	default:
		return nil, apperr.Forbiddenf("role %q may not view course assignments", actor.Role)
	}

	assignments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperr.FromStore(err)
	}

	return dto.NewAssignmentResponseSlice(assignments), nil
}

func (s *assignmentService) Delete(ctx context.Context, actor models.Actor, id uint) error {
	switch actor.Role {
	case models.RoleProgramLeader, models.RoleAdmin:
	default:
		return apperr.Forbiddenf("role %q may not remove course assignments", actor.Role)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("assignment %d", id)
		}
		return apperr.FromStore(err)
	}

	s.logger.Info().Uint("assignment_id", id).Msg("course assignment removed")
	return nil
}

// resolveProgramType enforces the program-type lock: a program leader's
// assignments always carry their own program type. An omitted value is
// coerced; a differing explicit value is rejected outright.
func resolveProgramType(actor models.Actor, requested string) (models.ProgramType, error) {
	if actor.Role == models.RoleProgramLeader {
		if requested != "" && models.ProgramType(requested) != actor.Program {
			return "", apperr.Forbiddenf("program leaders may only assign within the %s program", actor.Program)
		}
		return actor.Program, nil
	}

	program := models.ProgramType(requested)
	if program == "" {
		program = models.ProgramDegree
	}
	if !program.Valid() || program == models.ProgramNotApplicable {
		return "", apperr.Validationf("unknown program type %q", requested)
	}

	return program, nil
}
