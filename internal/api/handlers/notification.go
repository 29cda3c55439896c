package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/retail-pos/internal/logging"
	service "github.com/aaravmahajanofficial/retail-pos/internal/services"
	"github.com/aaravmahajanofficial/retail-pos/internal/utils/response"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications godoc
//
//	@Summary		List sale confirmations
//	@Description	Lists sale confirmations, newest first.
//	@Tags			Notifications
//	@Produce		json
//	@Param			page		query		int							false	"Page number"		default(1)
//	@Param			pageSize	query		int							false	"Items per page"	default(10)
//	@Success		200			{object}	models.PaginatedResponse	"Notifications"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/notifications [get]
func (h *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))

		result, err := h.notificationService.ListNotifications(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list notifications", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Notifications listed", slog.Int("page", result.Page), slog.Int("total", result.Total))
		response.Success(w, http.StatusOK, result)
	}
}
