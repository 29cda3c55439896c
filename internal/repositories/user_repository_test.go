package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	repository "github.com/aaravmahajanofficial/retail-pos/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepo(db)
	assert.NotNil(t, repo, "NewUserRepo should return a non-nil repository")
}

func TestUserRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepo(db)
	ctx := t.Context()

	insertSQL := regexp.QuoteMeta(`
        INSERT INTO users(email, password, name, created_at, updated_at)
        VALUES($1, $2, $3, NOW(), NOW())
        RETURNING id, created_at, updated_at`)

	t.Run("CreateUser_Success", func(t *testing.T) {
		// Arrange
		user := &models.User{
			Email:    "test@example.com",
			Password: "hashedpassword",
			Name:     "Test User",
		}
		now := time.Now()
		newID := uuid.New()

		mock.ExpectQuery(insertSQL).
			WithArgs(user.Email, user.Password, user.Name).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(newID.String(), now, now))

		// Act
		err := repo.CreateUser(ctx, user)

		// Assert
		require.NoError(t, err, "CreateUser should not return an error on success")
		assert.Equal(t, newID, user.ID, "User ID should be updated")
		assert.WithinDuration(t, now, user.CreatedAt, time.Second, "User CreatedAt should be updated")
		assert.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("CreateUser_Duplicate", func(t *testing.T) {
		// Arrange
		user := &models.User{Email: "taken@example.com", Password: "x", Name: "Dup"}
		mock.ExpectQuery(insertSQL).
			WithArgs(user.Email, user.Password, user.Name).
			WillReturnError(&pq.Error{Code: "23505"})

		// Act
		err := repo.CreateUser(ctx, user)

		// Assert
		assert.ErrorIs(t, err, repository.ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateUser_Error", func(t *testing.T) {
		// Arrange
		user := &models.User{Email: "error@example.com", Password: "password", Name: "Error User"}
		dbError := errors.New("database insertion error")

		mock.ExpectQuery(insertSQL).
			WithArgs(user.Email, user.Password, user.Name).
			WillReturnError(dbError)

		// Act
		err := repo.CreateUser(ctx, user)

		// Assert
		assert.ErrorIs(t, err, dbError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserByEmail", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`FROM users WHERE email = $1`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			id := uuid.New()
			now := time.Now()
			mock.ExpectQuery(expectedSQL).
				WithArgs("found@example.com").
				WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "name", "created_at", "updated_at"}).
					AddRow(id.String(), "found@example.com", "hash", "Found", now, now))

			// Act
			user, err := repo.GetUserByEmail(ctx, "found@example.com")

			// Assert
			require.NoError(t, err)
			assert.Equal(t, id, user.ID)
			assert.Equal(t, "hash", user.Password)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs("missing@example.com").
				WillReturnError(sql.ErrNoRows)

			// Act
			user, err := repo.GetUserByEmail(ctx, "missing@example.com")

			// Assert
			assert.Nil(t, user)
			assert.ErrorIs(t, err, repository.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetUserById", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`FROM users WHERE id = $1`)
		id := uuid.New()

		t.Run("Success", func(t *testing.T) {
			// Arrange
			now := time.Now()
			mock.ExpectQuery(expectedSQL).
				WithArgs(id).
				WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "name", "created_at", "updated_at"}).
					AddRow(id.String(), "a@b.co", "hashed", "A", now, now))

			// Act
			user, err := repo.GetUserById(ctx, id)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, "a@b.co", user.Email)
			assert.Equal(t, "hashed", user.Password)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).WithArgs(id).WillReturnError(sql.ErrNoRows)

			// Act
			_, err := repo.GetUserById(ctx, id)

			// Assert
			assert.ErrorIs(t, err, repository.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdatePassword", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`)
		id := uuid.New()

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).
				WithArgs("new-hash", id).
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.UpdatePassword(ctx, id, "new-hash")

			// Assert
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).
				WithArgs("new-hash", id).
				WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			err := repo.UpdatePassword(ctx, id, "new-hash")

			// Assert
			assert.ErrorIs(t, err, repository.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Database Error", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).
				WithArgs("new-hash", id).
				WillReturnError(errors.New("connection reset"))

			// Act
			err := repo.UpdatePassword(ctx, id, "new-hash")

			// Assert
			assert.ErrorContains(t, err, "failed to update password")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})
}

func TestProfileRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProfileRepo(db)
	ctx := t.Context()
	userID := uuid.New()

	t.Run("GetProfile", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`FROM profiles WHERE user_id = $1`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			now := time.Now()
			mock.ExpectQuery(expectedSQL).
				WithArgs(userID).
				WillReturnRows(sqlmock.NewRows([]string{"user_id", "role", "created_at", "updated_at"}).
					AddRow(userID.String(), "admin", now, now))

			// Act
			profile, err := repo.GetProfile(ctx, userID)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, models.RoleAdmin, profile.Role)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Missing", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).WithArgs(userID).WillReturnError(sql.ErrNoRows)

			// Act
			profile, err := repo.GetProfile(ctx, userID)

			// Assert
			assert.Nil(t, profile)
			assert.ErrorIs(t, err, repository.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("CreateProfile keeps the stored role", func(t *testing.T) {
		// Arrange
		now := time.Now()
		profile := &models.Profile{UserID: userID, Role: models.RoleSalesperson}
		mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id`)).
			WithArgs(userID, models.RoleSalesperson).
			WillReturnRows(sqlmock.NewRows([]string{"role", "created_at", "updated_at"}).AddRow("admin", now, now))

		// Act
		err := repo.CreateProfile(ctx, profile)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, profile.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
