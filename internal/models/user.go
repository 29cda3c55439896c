package models

import (
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleSalesperson Role = "salesperson"
)

func (r Role) Valid() bool {
	return slices.Contains([]Role{RoleAdmin, RoleSalesperson}, r)
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required"`
	Password  string    `json:"-"`
	Role      Role      `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile carries the role of an identity.
type Profile struct {
	UserID    uuid.UUID `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type LoginResponse struct {
	Success        bool     `json:"success"`
	Token          string   `json:"token,omitempty"`
	ExpiresIn      int      `json:"expires_in,omitempty"`
	Session        *Session `json:"session,omitempty"`
	RemainingTries int      `json:"remaining_tries,omitempty"`
	RetryAfter     int      `json:"retry_after,omitempty"`
	Message        string   `json:"message,omitempty"`
}

// JWT claims structure
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   Role      `json:"role"`
	jwt.RegisteredClaims
}

type SessionState string

const (
	SessionUnauthenticated SessionState = "unauthenticated"
	SessionAuthenticated   SessionState = "authenticated"
)

type Session struct {
	State     SessionState `json:"state"`
	UserID    uuid.UUID    `json:"user_id,omitempty"`
	Email     string       `json:"email,omitempty"`
	Role      Role         `json:"role,omitempty"`
	TokenID   string       `json:"-"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

func UnauthenticatedSession() *Session {
	return &Session{State: SessionUnauthenticated}
}

// SessionFromClaims builds an authenticated session. An unknown role falls
// back to salesperson.
func SessionFromClaims(claims *Claims) *Session {
	if claims == nil {
		return UnauthenticatedSession()
	}

	role := claims.Role
	if !role.Valid() {
		role = RoleSalesperson
	}

	session := &Session{
		State:   SessionAuthenticated,
		UserID:  claims.UserID,
		Email:   claims.Email,
		Role:    role,
		TokenID: claims.ID,
	}

	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		session.ExpiresAt = &exp
	}

	return session
}

func (s *Session) Authenticated() bool {
	return s != nil && s.State == SessionAuthenticated
}
