package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/retail-pos/internal/config"
	appErrors "github.com/aaravmahajanofficial/retail-pos/internal/errors"
	"github.com/aaravmahajanofficial/retail-pos/internal/logging"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	repository "github.com/aaravmahajanofficial/retail-pos/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, session *models.Session) error
	ChangePassword(ctx context.Context, session *models.Session, req *models.ChangePasswordRequest) error
	ResolveRole(ctx context.Context, userID uuid.UUID) (models.Role, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userService struct {
	repo        repository.UserRepository
	profileRepo repository.ProfileRepository
	rateLimit   repository.RateLimitRepository
	sessions    repository.SessionRepository
	cfg         *config.Security
}

func NewUserService(repo repository.UserRepository, profileRepo repository.ProfileRepository, rateLimit repository.RateLimitRepository, sessions repository.SessionRepository, cfg *config.Security) UserService {
	return &userService{
		repo:        repo,
		profileRepo: profileRepo,
		rateLimit:   rateLimit,
		sessions:    sessions,
		cfg:         cfg,
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {

	logger := logging.FromContext(ctx)

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashedPassword),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.DuplicateEntryError("Email already registered")
		}
		return nil, appErrors.DatabaseError("Failed to create user").WithError(err)
	}

	profile := &models.Profile{UserID: user.ID, Role: models.RoleSalesperson}
	if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
		// the profile is created again on first sign-in
		logger.Error("Failed to create profile", slog.String("userId", user.ID.String()), slog.String("error", err.Error()))
		user.Role = models.RoleSalesperson
	} else {
		user.Role = profile.Role
	}

	return user, nil
}

// ResolveRole reads the role from the user's profile, creating a salesperson
// profile when there is none.
func (s *userService) ResolveRole(ctx context.Context, userID uuid.UUID) (models.Role, error) {

	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err == nil {
		return profile.Role, nil
	}

	if !errors.Is(err, repository.ErrNotFound) {
		return "", appErrors.DatabaseError("Failed to load profile").WithError(err)
	}

	profile = &models.Profile{UserID: userID, Role: models.RoleSalesperson}
	if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
		return "", appErrors.DatabaseError("Failed to create profile").WithError(err)
	}

	return profile.Role, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	logger := logging.FromContext(ctx)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// check rate limit
	allowed, remaining, retryAfter, err := s.rateLimit.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	// Retrieve the user from the DB and compare the passwords
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid email or password",
			RemainingTries: remaining,
		}, nil
	}

	role, err := s.ResolveRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL())),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	// Generate Token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWTKey))
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate authentication token").WithError(err)
	}

	if err := s.rateLimit.ResetLoginAttempts(ctx, email); err != nil {
		logger.Warn("Failed to reset login attempts", slog.String("error", err.Error()))
	}

	logger.Info("User signed in", slog.String("userId", user.ID.String()), slog.String("role", string(role)))

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(time.Until(claims.ExpiresAt.Time).Seconds()),
		Session:   models.SessionFromClaims(claims),
	}, nil
}

// Logout revokes the session's token until it would have expired.
func (s *userService) Logout(ctx context.Context, session *models.Session) error {

	if !session.Authenticated() {
		return appErrors.AuthRequiredError("Not signed in")
	}

	if session.TokenID == "" || session.ExpiresAt == nil {
		return nil
	}

	if err := s.sessions.RevokeToken(ctx, session.TokenID, time.Until(*session.ExpiresAt)); err != nil {
		return appErrors.DatabaseError("Failed to sign out").WithError(err)
	}

	return nil
}

// ChangePassword replaces the signed-in user's password after checking the
// current one. Tokens already issued stay valid until they expire.
func (s *userService) ChangePassword(ctx context.Context, session *models.Session, req *models.ChangePasswordRequest) error {

	if !session.Authenticated() {
		return appErrors.AuthRequiredError("Not signed in")
	}

	logger := logging.FromContext(ctx)

	user, err := s.repo.GetUserById(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("User not found").WithError(err)
		}
		return appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		logger.Warn("Password change rejected", slog.String("userId", user.ID.String()))
		return appErrors.UnauthorizedError("Current password is incorrect")
	}

	if req.NewPassword == req.CurrentPassword {
		return appErrors.BadRequestError("New password must differ from the current password")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.InternalError("Failed to secure password").WithError(err)
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, string(hashedPassword)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("User not found").WithError(err)
		}
		return appErrors.DatabaseError("Failed to update password").WithError(err)
	}

	logger.Info("Password changed", slog.String("userId", user.ID.String()))

	return nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {

	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return user, nil
}
