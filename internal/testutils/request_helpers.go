package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/aaravmahajanofficial/retail-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-pos/internal/logging"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	"github.com/google/uuid"
)

// CreateTestRequestWithContext builds a request as it looks after the access
// gate admitted a user with role.
func CreateTestRequestWithContext(method, target string, body io.Reader, userID uuid.UUID, role models.Role, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	exp := time.Now().Add(time.Hour)
	session := &models.Session{
		State:     models.SessionAuthenticated,
		UserID:    userID,
		Email:     "test@example.com",
		Role:      role,
		TokenID:   "test-token-id",
		ExpiresAt: &exp,
	}
	claims := &models.Claims{UserID: userID, Email: session.Email, Role: role}
	claims.ID = session.TokenID

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)
	ctx = context.WithValue(ctx, middleware.SessionContextKey, session)
	ctx = logging.WithLogger(ctx, logger)

	return req.WithContext(ctx)
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(logging.WithLogger(req.Context(), logger))
}
