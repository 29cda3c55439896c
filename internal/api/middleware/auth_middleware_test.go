package middleware_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/retail-pos/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/retail-pos/internal/errors"
	"github.com/aaravmahajanofficial/retail-pos/internal/logging"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

type stubRevocations struct {
	revoked map[string]bool
	err     error
}

func (s *stubRevocations) IsTokenRevoked(_ context.Context, tokenID string) (bool, error) {
	return s.revoked[tokenID], s.err
}

func createTestToken(userID uuid.UUID, email string, role models.Role, tokenID string, duration time.Duration, key []byte, method jwt.SigningMethod) (string, error) {
	claims := &models.Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token := jwt.NewWithClaims(method, claims)

	return token.SignedString(key)
}

func TestAuthMiddleware_Resolve(t *testing.T) {
	// Arrange
	revocations := &stubRevocations{revoked: map[string]bool{"revoked-jti": true}}
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey, revocations)
	userID := uuid.New()
	userEmail := "test@example.com"

	token := func(tokenID string, duration time.Duration, key []byte, method jwt.SigningMethod) string {
		signed, err := createTestToken(userID, userEmail, models.RoleAdmin, tokenID, duration, key, method)
		require.NoError(t, err)

		return "Bearer " + signed
	}

	tests := []struct {
		name            string
		authHeader      string
		expectedMessage string
	}{
		{
			name:            "Success - Valid Token",
			authHeader:      token("live-jti", time.Hour, testJwtKey, jwt.SigningMethodHS256),
			expectedMessage: "",
		},
		{
			name:            "Fail - Missing Authorization Header",
			authHeader:      "",
			expectedMessage: "Authorization header is required",
		},
		{
			name:            "Fail - Invalid Authorization Header Format (No Bearer)",
			authHeader:      "InvalidTokenFormat",
			expectedMessage: "Invalid authorization format",
		},
		{
			name:            "Fail - Invalid Authorization Header Format (Only Bearer)",
			authHeader:      "Bearer ",
			expectedMessage: "Invalid or expired token",
		},
		{
			name:            "Fail - Invalid Token (Malformed)",
			authHeader:      "Bearer not.a.valid.token",
			expectedMessage: "Invalid or expired token",
		},
		{
			name:            "Fail - Invalid Token (Wrong Signing Key)",
			authHeader:      token("live-jti", time.Hour, []byte("different-secret-key-0987654321"), jwt.SigningMethodHS256),
			expectedMessage: "Invalid or expired token",
		},
		{
			name:            "Fail - Invalid Token (Wrong Signing Method)",
			authHeader:      token("live-jti", time.Hour, testJwtKey, jwt.SigningMethodHS512),
			expectedMessage: "Invalid or expired token",
		},
		{
			name:            "Fail - Expired Token",
			authHeader:      token("live-jti", -time.Hour, testJwtKey, jwt.SigningMethodHS256),
			expectedMessage: "Invalid or expired token",
		},
		{
			name:            "Fail - Revoked Token",
			authHeader:      token("revoked-jti", time.Hour, testJwtKey, jwt.SigningMethodHS256),
			expectedMessage: "Session has ended",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			// Add a base logger to the context, simulating the Logging middleware
			baseLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))
			req = req.WithContext(logging.WithLogger(req.Context(), baseLogger))

			// Act
			claims, err := authMiddleware.Resolve(req)

			// Assert
			if tc.expectedMessage == "" {
				require.NoError(t, err)
				assert.Equal(t, userID, claims.UserID)
				assert.Equal(t, userEmail, claims.Email)
				assert.Equal(t, "live-jti", claims.ID)
				return
			}

			assert.Nil(t, claims)
			var appErr *appErrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
			assert.Equal(t, tc.expectedMessage, appErr.Message)
		})
	}
}

func TestAuthMiddleware_RevocationStoreDown(t *testing.T) {
	// Arrange
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey, &stubRevocations{err: errors.New("redis down")})
	gate := middleware.NewAccessGate(authMiddleware)

	signed, err := createTestToken(uuid.New(), "a@b.co", models.RoleSalesperson, "jti", time.Hour, testJwtKey, jwt.SigningMethodHS256)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()

	// Act
	gate.Require()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "THIRD_PARTY_ERROR")
}

func TestAccessGate_PlacesIdentityInContext(t *testing.T) {
	// Arrange
	gate := middleware.NewAccessGate(middleware.NewAuthMiddleware(testJwtKey, &stubRevocations{}))
	userID := uuid.New()

	signed, err := createTestToken(userID, "test@example.com", models.RoleAdmin, "live-jti", time.Hour, testJwtKey, jwt.SigningMethodHS256)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		require.True(t, ok, "User claims should be in context")
		assert.Equal(t, userID, claims.UserID)

		session := middleware.SessionFromContext(r.Context())
		assert.True(t, session.Authenticated())
		assert.Equal(t, models.RoleAdmin, session.Role)
		assert.Equal(t, "live-jti", session.TokenID)

		w.WriteHeader(http.StatusOK)
	})

	// Act
	gate.Require()(next).ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSessionFromContext(t *testing.T) {
	session := middleware.SessionFromContext(context.Background())

	require.NotNil(t, session)
	assert.False(t, session.Authenticated())
}
