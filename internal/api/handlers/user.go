package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/retail-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-pos/internal/logging"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	service "github.com/aaravmahajanofficial/retail-pos/internal/services"
	"github.com/aaravmahajanofficial/retail-pos/internal/utils"
	"github.com/aaravmahajanofficial/retail-pos/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

// Register godoc
//
//	@Summary		Register a user
//	@Description	Creates a user with the salesperson role.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	models.User				"User created"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid input"
//	@Failure		409		{object}	response.ErrorResponse	"Email already registered"
//	@Router			/auth/register [post]
func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Error("User registration failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User registered", slog.String("userID", user.ID.String()))
		response.Success(w, http.StatusCreated, user)
	}
}

// Login godoc
//
//	@Summary		Sign in
//	@Description	Exchanges email and password for a bearer token. Repeated failures for one email are throttled.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Credentials"
//	@Success		200			{object}	models.LoginResponse	"Signed in"
//	@Failure		401			{object}	models.LoginResponse	"Invalid credentials"
//	@Failure		429			{object}	models.LoginResponse	"Too many attempts"
//	@Router			/auth/login [post]
func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Error("Login failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if !resp.Success {
			status := http.StatusUnauthorized
			if resp.RetryAfter > 0 {
				status = http.StatusTooManyRequests
			}

			logger.Warn("Login rejected", slog.String("email", req.Email), slog.Int("remainingTries", resp.RemainingTries))
			response.WriteJson(w, status, response.APIResponse{Success: false, Data: resp})
			return
		}

		logger.Info("User logged in", slog.String("email", req.Email))
		response.Success(w, http.StatusOK, resp)
	}
}

// Logout godoc
//
//	@Summary	Sign out
//	@Tags		Auth
//	@Success	204
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Security	BearerAuth
//	@Router		/auth/logout [post]
func (h *UserHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())
		session := middleware.SessionFromContext(r.Context())

		if err := h.userService.Logout(r.Context(), session); err != nil {
			logger.Error("Logout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User logged out")
		w.WriteHeader(http.StatusNoContent)
	}
}

// ChangePassword godoc
//
//	@Summary		Change password
//	@Description	Replaces the signed-in user's password. The current password must match.
//	@Tags			Auth
//	@Accept			json
//	@Param			passwords	body	models.ChangePasswordRequest	true	"Current and new password"
//	@Success		204
//	@Failure		400	{object}	response.ErrorResponse	"Invalid input"
//	@Failure		401	{object}	response.ErrorResponse	"Current password is incorrect"
//	@Security		BearerAuth
//	@Router			/auth/password [put]
func (h *UserHandler) ChangePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		var req models.ChangePasswordRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.userService.ChangePassword(r.Context(), middleware.SessionFromContext(r.Context()), &req); err != nil {
			logger.Warn("Password change failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// Session godoc
//
//	@Summary	Current session
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	models.Session			"Session"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Security	BearerAuth
//	@Router		/auth/session [get]
func (h *UserHandler) Session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, middleware.SessionFromContext(r.Context()))
	}
}
