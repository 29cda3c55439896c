package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aaravmahajanofficial/retail-pos/internal/config"
	appErrors "github.com/aaravmahajanofficial/retail-pos/internal/errors"
	"github.com/aaravmahajanofficial/retail-pos/internal/logging"
	"github.com/aaravmahajanofficial/retail-pos/internal/metrics"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	repository "github.com/aaravmahajanofficial/retail-pos/internal/repositories"
	"github.com/aaravmahajanofficial/retail-pos/pkg/sendGrid"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,18}[0-9]$`)

type NotificationService interface {
	SendSaleConfirmation(ctx context.Context, sale *models.Sale, contact string) (*models.NotificationOutcome, error)
	ListNotifications(ctx context.Context, page int, size int) (*models.PaginatedResponse, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendGrid.EmailService
	cfg          *config.Config
	validate     *validator.Validate
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendGrid.EmailService, cfg *config.Config) NotificationService {
	return &notificationService{repo: repo, emailService: emailService, cfg: cfg, validate: validator.New()}
}

// ClassifyContact tells an email address from a phone number. Anything else
// is rejected.
func ClassifyContact(validate *validator.Validate, contact string) (models.NotificationType, error) {

	contact = strings.TrimSpace(contact)

	if strings.Contains(contact, "@") {
		if err := validate.Var(contact, "required,email"); err != nil {
			return "", appErrors.BadRequestError("Invalid customer email").WithError(err)
		}
		return models.NotificationTypeEmail, nil
	}

	if phonePattern.MatchString(contact) {
		return models.NotificationTypeSMS, nil
	}

	return "", appErrors.BadRequestError("Customer contact must be an email address or a phone number")
}

// SendSaleConfirmation records the confirmation and, for email contacts,
// hands it to SendGrid. Phone contacts are stored as scheduled SMS.
func (n *notificationService) SendSaleConfirmation(ctx context.Context, sale *models.Sale, contact string) (*models.NotificationOutcome, error) {

	logger := logging.FromContext(ctx)

	channel, err := ClassifyContact(n.validate, contact)
	if err != nil {
		return nil, err
	}

	metadata, err := json.Marshal(map[string]string{"sale_id": sale.ID.String()})
	if err != nil {
		return nil, appErrors.InternalError("Failed to encode notification metadata").WithError(err)
	}

	saleID := sale.ID
	notification := &models.Notification{
		ID:        uuid.New(),
		SaleID:    &saleID,
		Type:      channel,
		Recipient: strings.TrimSpace(contact),
		Subject:   fmt.Sprintf("Sale confirmation from %s", n.cfg.POS.StoreName),
		Content:   n.confirmation(sale),
		Status:    models.StatusPending,
		Metadata:  metadata,
	}

	if channel == models.NotificationTypeSMS {
		notification.Status = models.StatusScheduled
	}

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		metrics.RecordNotification(string(channel), string(models.StatusFailed))
		return nil, appErrors.NotificationFailedError("Failed to record notification").WithError(err)
	}

	if channel == models.NotificationTypeSMS {
		metrics.RecordNotification(string(channel), string(models.StatusScheduled))
		logger.Info("SMS confirmation scheduled", slog.String("notificationId", notification.ID.String()))

		return &models.NotificationOutcome{Channel: channel, Status: models.StatusScheduled}, nil
	}

	sendErr := n.emailService.Send(ctx, &models.EmailNotificationRequest{
		To:       notification.Recipient,
		Subject:  notification.Subject,
		Content:  notification.Content,
		Metadata: map[string]string{"sale_id": sale.ID.String()},
	})

	if sendErr != nil {
		metrics.RecordNotification(string(channel), string(models.StatusFailed))

		if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusFailed, sendErr.Error()); err != nil {
			logger.Error("Failed to update notification status", slog.String("notificationId", notification.ID.String()), slog.String("error", err.Error()))
		}

		return nil, appErrors.NotificationFailedError("Failed to send email").WithError(sendErr)
	}

	metrics.RecordNotification(string(channel), string(models.StatusSent))

	if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusSent, ""); err != nil {
		logger.Error("Email sent but status update failed", slog.String("notificationId", notification.ID.String()), slog.String("error", err.Error()))
	}

	return &models.NotificationOutcome{Channel: channel, Status: models.StatusSent}, nil
}

// confirmation is a short notice of the completed sale, not an itemized
// receipt.
func (n *notificationService) confirmation(sale *models.Sale) string {
	return fmt.Sprintf("Thank you for shopping at %s. Sale %s is complete, total paid %s.",
		n.cfg.POS.StoreName, sale.ID, models.FormatCurrency(sale.TotalAmount))
}

func (n *notificationService) ListNotifications(ctx context.Context, page int, size int) (*models.PaginatedResponse, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 50 {
		size = 10
	}

	notifications, total, err := n.repo.ListNotifications(ctx, page, size)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list notifications").WithError(err)
	}

	return &models.PaginatedResponse{
		Data:     notifications,
		Total:    total,
		Page:     page,
		PageSize: size,
	}, nil
}
