package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/retail-pos/internal/errors"
	"github.com/aaravmahajanofficial/retail-pos/internal/logging"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var (
	UserContextKey    = contextKey(uuid.New())
	SessionContextKey = contextKey(uuid.New())
)

// RevocationChecker reports whether a signed-out token id is still on the
// revocation list.
type RevocationChecker interface {
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthMiddleware struct {
	jwtKey      []byte
	revocations RevocationChecker
}

func NewAuthMiddleware(jwtKey []byte, revocations RevocationChecker) *AuthMiddleware {

	return &AuthMiddleware{jwtKey: jwtKey, revocations: revocations}

}

// Resolve verifies the bearer token of r. Token problems come back as
// UNAUTHORIZED app errors.
func (m *AuthMiddleware) Resolve(r *http.Request) (*models.Claims, error) {

	logger := logging.FromContext(r.Context())

	// Get token from Authorization header
	authHeader := r.Header.Get("Authorization")

	if authHeader == "" {
		return nil, errors.UnauthorizedError("Authorization header is required")
	}

	// Token is of format : "Bearer <token>"
	tokenParts := strings.Split(authHeader, " ")

	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		logger.Warn("Invalid authorization header format")
		return nil, errors.UnauthorizedError("Invalid authorization format")
	}

	// Stores the decoded information
	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
		return m.jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		logger.Warn("JWT parsing failed", slog.Any("error", err))
		return nil, errors.UnauthorizedError("Invalid or expired token")
	}

	if claims.ID != "" && m.revocations != nil {
		revoked, err := m.revocations.IsTokenRevoked(r.Context(), claims.ID)
		if err != nil {
			logger.Error("Token revocation check failed", slog.String("error", err.Error()))
			return nil, errors.ThirdPartyError("Failed to verify session").WithError(err)
		}

		if revoked {
			logger.Warn("Revoked token presented", slog.String("userId", claims.UserID.String()))
			return nil, errors.UnauthorizedError("Session has ended")
		}
	}

	return claims, nil
}

// withIdentity stores the claims, the session and a user-scoped logger.
func withIdentity(r *http.Request, claims *models.Claims) *http.Request {

	ctx := context.WithValue(r.Context(), UserContextKey, claims)
	ctx = context.WithValue(ctx, SessionContextKey, models.SessionFromClaims(claims))

	requestScopedLogger := logging.FromContext(r.Context()).With(slog.String("userId", claims.UserID.String()))
	ctx = logging.WithLogger(ctx, requestScopedLogger)

	return r.WithContext(ctx)
}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)

	return claims, ok
}

// SessionFromContext never returns nil. Requests that did not pass through
// the auth layer are unauthenticated.
func SessionFromContext(ctx context.Context) *models.Session {
	if session, ok := ctx.Value(SessionContextKey).(*models.Session); ok && session != nil {
		return session
	}

	return models.UnauthenticatedSession()
}
