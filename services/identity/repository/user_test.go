package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatks/sevakart/internal/pkg/errs"
	"github.com/rajatks/sevakart/internal/pkg/models"
)

func setupUserRepo(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewUserRepo(sqlx.NewDb(db, "pgx")), mock
}

func userColumns() []string {
	return []string{"id", "phone", "fullname", "role", "is_active", "created_at", "updated_at", "last_login_at"}
}

func TestUserRepo_CreateUser(t *testing.T) {
	repo, mock := setupUserRepo(t)

	user := &models.User{
		Phone:     "919876543210",
		FullName:  "Asha Verma",
		Role:      models.RoleCustomer,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetUserByID(t *testing.T) {
	repo, mock := setupUserRepo(t)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(id, "919876543210", "Asha Verma", models.RoleCustomer, true, now, now, nil))

	user, err := repo.GetUserByID(context.Background(), id.String())

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "919876543210", user.Phone)
	assert.Nil(t, user.ProviderInfo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetUserByID_NotFound(t *testing.T) {
	repo, mock := setupUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	user, err := repo.GetUserByID(context.Background(), uuid.NewString())

	assert.Nil(t, user)
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestUserRepo_GetActiveUserByPhone_LoadsProviderProfile(t *testing.T) {
	repo, mock := setupUserRepo(t)

	id := uuid.New()
	now := time.Now()
	rate := 450.0
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("919876543210").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(id, "919876543210", "Ravi Kumar", models.RoleProvider, true, now, now, nil))
	mock.ExpectQuery("SELECT (.+) FROM providers").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "verified", "rating", "completed_jobs", "hourly_rate", "photo_url", "bio"}).
			AddRow(id, true, 4.7, 120, rate, "", "Electrician"))

	user, err := repo.GetActiveUserByPhone(context.Background(), "919876543210")

	require.NoError(t, err)
	require.NotNil(t, user.ProviderInfo)
	assert.True(t, user.ProviderInfo.Verified)
	assert.Equal(t, 4.7, user.ProviderInfo.Rating)
	assert.Equal(t, 120, user.ProviderInfo.CompletedJobs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdateLastLogin(t *testing.T) {
	repo, mock := setupUserRepo(t)

	id := uuid.New()
	mock.ExpectExec("UPDATE users").
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateLastLogin(context.Background(), id)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
