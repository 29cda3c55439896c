package repository_test

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	repository "github.com/aaravmahajanofficial/retail-pos/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotificationRepoTest(t *testing.T) (repository.NotificationRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewNotificationRepo(db), mock
}

func TestCreateNotification(t *testing.T) {
	ctx := t.Context()
	expectedSQL := regexp.QuoteMeta(`INSERT INTO notifications (id, sale_id, type, recipient, subject, content, status, error_message, metadata, created_at, updated_at)`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupNotificationRepoTest(t)
		saleID := uuid.New()
		now := time.Now()
		notification := &models.Notification{
			ID:        uuid.New(),
			SaleID:    &saleID,
			Type:      models.NotificationTypeEmail,
			Recipient: "buyer@example.com",
			Subject:   "Sale confirmation",
			Content:   "Thanks",
			Status:    models.StatusPending,
			Metadata:  json.RawMessage(`{"sale_id":"x"}`),
		}

		mock.ExpectQuery(expectedSQL).
			WithArgs(notification.ID, saleID, notification.Type, notification.Recipient, notification.Subject, notification.Content, notification.Status, "", []byte(`{"sale_id":"x"}`)).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		// Act
		err := repo.CreateNotification(ctx, notification)

		// Assert
		require.NoError(t, err)
		assert.WithinDuration(t, now, notification.CreatedAt, time.Second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		repo, mock := setupNotificationRepoTest(t)
		mock.ExpectQuery(expectedSQL).WillReturnError(errors.New("insert failed"))

		// Act
		err := repo.CreateNotification(ctx, &models.Notification{ID: uuid.New()})

		// Assert
		assert.ErrorContains(t, err, "failed to create notification")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateNotificationStatus(t *testing.T) {
	ctx := t.Context()
	expectedSQL := regexp.QuoteMeta(`UPDATE notifications SET status = $1, error_message = $2, updated_at = $3 WHERE id = $4`)
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupNotificationRepoTest(t)
		mock.ExpectExec(expectedSQL).
			WithArgs(models.StatusSent, "", sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.UpdateNotificationStatus(ctx, id, models.StatusSent, "")

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		repo, mock := setupNotificationRepoTest(t)
		mock.ExpectExec(expectedSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.UpdateNotificationStatus(ctx, id, models.StatusFailed, "bounced")

		// Assert
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListNotifications(t *testing.T) {
	ctx := t.Context()
	columns := []string{"id", "sale_id", "type", "recipient", "subject", "content", "status", "error_message", "metadata", "created_at", "updated_at"}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupNotificationRepoTest(t)
		now := time.Now()
		saleID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM notifications`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC LIMIT $1 OFFSET $2`)).
			WithArgs(10, 10).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(uuid.New().String(), saleID.String(), "email", "a@b.co", "Sale confirmation", "Thanks", "sent", "", []byte(`{}`), now, now).
				AddRow(uuid.New().String(), nil, "sms", "+911234567890", "", "Thanks", "scheduled", "", nil, now, now))

		// Act
		notifications, total, err := repo.ListNotifications(ctx, 2, 10)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, notifications, 2)
		require.NotNil(t, notifications[0].SaleID)
		assert.Equal(t, saleID, *notifications[0].SaleID)
		assert.Nil(t, notifications[1].SaleID)
		assert.Nil(t, notifications[1].Metadata)
		assert.Equal(t, models.StatusScheduled, notifications[1].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Count", func(t *testing.T) {
		// Arrange
		repo, mock := setupNotificationRepoTest(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM notifications`)).WillReturnError(errors.New("down"))

		// Act
		notifications, total, err := repo.ListNotifications(ctx, 1, 10)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, notifications)
		assert.Zero(t, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
