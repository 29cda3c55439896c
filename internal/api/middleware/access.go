package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"slices"

	"github.com/aaravmahajanofficial/retail-pos/internal/errors"
	"github.com/aaravmahajanofficial/retail-pos/internal/logging"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	"github.com/aaravmahajanofficial/retail-pos/internal/utils/response"
)

const (
	LoginPath   = "/login"
	DefaultPath = "/"
)

// CanAccess is the single authorization predicate. An empty allowed set
// admits every valid role.
func CanAccess(role models.Role, allowed ...models.Role) bool {
	if !role.Valid() {
		return false
	}

	return len(allowed) == 0 || slices.Contains(allowed, role)
}

// LoginRedirect keeps the requested destination for after sign-in.
func LoginRedirect(r *http.Request) string {
	return LoginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
}

type AccessGate struct {
	auth *AuthMiddleware
}

func NewAccessGate(auth *AuthMiddleware) *AccessGate {
	return &AccessGate{auth: auth}
}

// Require admits authenticated sessions whose role is in roles. Anonymous
// callers are sent to sign-in, callers with the wrong role to the default
// route.
func (g *AccessGate) Require(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			logger := logging.FromContext(r.Context())

			claims, err := g.auth.Resolve(r)
			if err != nil {
				if !errors.HasCode(err, errors.ErrCodeUnauthorized) {
					response.Error(w, err)
					return
				}

				response.Error(w, errors.AuthRequiredError("Sign in required").
					WithDetail("redirect_to="+LoginRedirect(r)).WithError(err))
				return
			}

			r = withIdentity(r, claims)
			session := SessionFromContext(r.Context())

			if !CanAccess(session.Role, roles...) {
				logger.Warn("Role denied",
					slog.String("userId", session.UserID.String()),
					slog.String("role", string(session.Role)),
				)
				response.Error(w, errors.RoleDeniedError("You do not have access to this resource").
					WithDetail("redirect_to="+DefaultPath))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
