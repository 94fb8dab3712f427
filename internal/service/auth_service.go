package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/karabo-m/luct-reporting-api/internal/apperr"
	"github.com/karabo-m/luct-reporting-api/internal/dto"
	"github.com/karabo-m/luct-reporting-api/internal/models"
	"github.com/karabo-m/luct-reporting-api/internal/repository"
)

// TokenConfig carries the signing material and lifetimes for issued tokens.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// AuthService handles account creation and session tokens. Sign-out revokes
// the access token's JTI until its expiry.
type AuthService interface {
	SignUp(ctx context.Context, payload dto.SignUpRequest) (dto.UserResponse, error)
	SignIn(ctx context.Context, payload dto.SignInRequest) (dto.TokenPairResponse, error)
	Refresh(ctx context.Context, payload dto.RefreshRequest) (dto.TokenPairResponse, error)
	SignOut(ctx context.Context, accessToken string) error
}

type authService struct {
	users     repository.UserRepository
	denylist  TokenDenylist
	tokens    TokenConfig
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAuthService builds a new auth service.
func NewAuthService(users repository.UserRepository, denylist TokenDenylist, tokens TokenConfig, validate *validator.Validate, logger zerolog.Logger) AuthService {
	return &authService{
		users:     users,
		denylist:  denylist,
		tokens:    tokens,
		validator: validate,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		now:       time.Now,
	}
}

func (s *authService) SignUp(ctx context.Context, payload dto.SignUpRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, apperr.Validationf("%v", err)
	}

	role := models.RoleStudent
	if payload.Role != "" {
		role = models.Role(payload.Role)
		if !role.Valid() {
			return dto.UserResponse{}, apperr.Validationf("unknown role %q", payload.Role)
		}
	}

	stream := models.StreamNotApplicable
	if payload.Stream != "" {
		stream = models.Stream(payload.Stream)
		if !stream.Valid() {
			return dto.UserResponse{}, apperr.Validationf("unknown stream %q", payload.Stream)
		}
	}

	program := models.ProgramNotApplicable
	if payload.Program != "" {
		program = models.ProgramType(payload.Program)
		if !program.Valid() {
			return dto.UserResponse{}, apperr.Validationf("unknown program type %q", payload.Program)
		}
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return dto.UserResponse{}, apperr.Validationf("email %s is already registered", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.UserResponse{}, apperr.FromStore(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(payload.Name),
		Role:         role,
		Stream:       stream,
		Program:      program,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return dto.UserResponse{}, apperr.FromStore(err)
	}

	s.logger.Info().Uint("user_id", user.ID).Str("role", string(user.Role)).Msg("account created")

	return dto.NewUserResponse(user), nil
}

func (s *authService) SignIn(ctx context.Context, payload dto.SignInRequest) (dto.TokenPairResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TokenPairResponse{}, apperr.Validationf("%v", err)
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TokenPairResponse{}, apperr.Forbiddenf("invalid credentials")
		}
		return dto.TokenPairResponse{}, apperr.FromStore(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		return dto.TokenPairResponse{}, apperr.Forbiddenf("invalid credentials")
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, payload dto.RefreshRequest) (dto.TokenPairResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TokenPairResponse{}, apperr.Validationf("%v", err)
	}

	claims, err := s.parseToken(payload.RefreshToken, s.tokens.RefreshSecret)
	if err != nil {
		return dto.TokenPairResponse{}, apperr.Forbiddenf("invalid refresh token")
	}
	if kind, _ := claims["typ"].(string); kind != "refresh" {
		return dto.TokenPairResponse{}, apperr.Forbiddenf("invalid refresh token")
	}

	userID, ok := subjectID(claims)
	if !ok {
		return dto.TokenPairResponse{}, apperr.Forbiddenf("invalid refresh token")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TokenPairResponse{}, apperr.Forbiddenf("invalid refresh token")
		}
		return dto.TokenPairResponse{}, apperr.FromStore(err)
	}

	return s.issueTokens(user)
}

func (s *authService) SignOut(ctx context.Context, accessToken string) error {
	claims, err := s.parseToken(accessToken, s.tokens.AccessSecret)
	if err != nil {
		return apperr.Forbiddenf("invalid token")
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return apperr.Forbiddenf("invalid token")
	}

	ttl := time.Duration(0)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ttl = exp.Sub(s.now())
	}

	if err := s.denylist.Revoke(ctx, jti, ttl); err != nil {
		return apperr.Unavailablef("could not revoke session: %v", err)
	}

	s.logger.Info().Str("jti", jti).Msg("session revoked")
	return nil
}

func (s *authService) issueTokens(user models.User) (dto.TokenPairResponse, error) {
	now := s.now()

	access, err := s.signToken(jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"jti":  uuid.NewString(),
		"typ":  "access",
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokens.AccessTTL).Unix(),
	}, s.tokens.AccessSecret)
	if err != nil {
		return dto.TokenPairResponse{}, err
	}

	refresh, err := s.signToken(jwt.MapClaims{
		"sub": user.ID,
		"jti": uuid.NewString(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(s.tokens.RefreshTTL).Unix(),
	}, s.tokens.RefreshSecret)
	if err != nil {
		return dto.TokenPairResponse{}, err
	}

	return dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.NewUserResponse(user),
	}, nil
}

func (s *authService) signToken(claims jwt.MapClaims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (s *authService) parseToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

func subjectID(claims jwt.MapClaims) (uint, bool) {
	switch v := claims["sub"].(type) {
	case float64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	default:
		return 0, false
	}
}
