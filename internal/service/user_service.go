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

// UserService exposes account administration. Only admins list users or edit
// another account, and only the name/role/stream/program fields ever change.
type UserService interface {
	List(ctx context.Context, actor models.Actor) ([]dto.UserResponse, error)
	Update(ctx context.Context, actor models.Actor, id uint, payload dto.UserUpdateRequest) (dto.UserResponse, error)
	Actor(ctx context.Context, id uint) (models.Actor, error)
}

type userService struct {
	repo      repository.UserRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewUserService builds a new user service.
func NewUserService(repo repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) UserService {
	return &userService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "user_service").Logger(),
	}
}

func (s *userService) List(ctx context.Context, actor models.Actor) ([]dto.UserResponse, error) {
	if actor.Role != models.RoleAdmin {
		return nil, apperr.Forbiddenf("only admins may list users")
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.FromStore(err)
	}

	return dto.NewUserResponseSlice(users), nil
}

func (s *userService) Update(ctx context.Context, actor models.Actor, id uint, payload dto.UserUpdateRequest) (dto.UserResponse, error) {
	if actor.Role != models.RoleAdmin {
		return dto.UserResponse{}, apperr.Forbiddenf("only admins may edit users")
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, apperr.Validationf("%v", err)
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, apperr.NotFoundf("user %d", id)
		}
		return dto.UserResponse{}, apperr.FromStore(err)
	}

	if payload.Name != nil {
		user.Name = strings.TrimSpace(*payload.Name)
	}
	if payload.Role != nil {
		role := models.Role(*payload.Role)
		if !role.Valid() {
			return dto.UserResponse{}, apperr.Validationf("unknown role %q", *payload.Role)
		}
		user.Role = role
	}
	if payload.Stream != nil {
		stream := models.Stream(*payload.Stream)
		if !stream.Valid() {
			return dto.UserResponse{}, apperr.Validationf("unknown stream %q", *payload.Stream)
		}
		user.Stream = stream
	}
	if payload.Program != nil {
		program := models.ProgramType(*payload.Program)
		if !program.Valid() {
			return dto.UserResponse{}, apperr.Validationf("unknown program type %q", *payload.Program)
		}
		user.Program = program
	}

	if err := s.repo.Update(ctx, &user); err != nil {
		return dto.UserResponse{}, apperr.FromStore(err)
	}

	s.logger.Info().
		Uint("user_id", user.ID).
		Str("role", string(user.Role)).
		Msg("user updated")

	return dto.NewUserResponse(user), nil
}

// Actor resolves the acting identity for an authenticated user id.
func (s *userService) Actor(ctx context.Context, id uint) (models.Actor, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Actor{}, apperr.NotFoundf("user %d", id)
		}
		return models.Actor{}, apperr.FromStore(err)
	}

	return user.Actor(), nil
}
