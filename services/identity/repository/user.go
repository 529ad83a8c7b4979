package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rajatks/sevakart/internal/pkg/errs"
	"github.com/rajatks/sevakart/internal/pkg/models"
)

// UserRepo is the SQL-backed account directory
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// CreateUser creates a new user record
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	query := `
		INSERT INTO users (id, phone, fullname, role, is_active, created_at, updated_at)
		VALUES (:id, :phone, :fullname, :role, :is_active, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("%w: failed to insert user: %v", errs.ErrUnavailable, err)
	}

	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.getUserWhere(ctx, "id = $1", id)
}

// GetActiveUserByPhone retrieves an active user by phone number
func (r *UserRepo) GetActiveUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.getUserWhere(ctx, "phone = $1 AND is_active = true", phone)
}

func (r *UserRepo) getUserWhere(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, phone, fullname, role, is_active, created_at, updated_at, last_login_at
		FROM users
		WHERE %s
	`, where)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no matching account", errs.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("%w: failed to query user: %v", errs.ErrUnavailable, err)
	}

	if user.Role == models.RoleProvider {
		provider, err := r.getProviderInfo(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		user.ProviderInfo = provider
	}

	return &user, nil
}

// getProviderInfo retrieves the provider profile for a user
func (r *UserRepo) getProviderInfo(ctx context.Context, userID uuid.UUID) (*models.Provider, error) {
	query := `
		SELECT user_id, verified, rating, completed_jobs, hourly_rate, photo_url, bio
		FROM providers
		WHERE user_id = $1
	`

	var provider models.Provider
	if err := r.db.GetContext(ctx, &provider, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to query provider info: %v", errs.ErrUnavailable, err)
	}

	return &provider, nil
}

// UpdateLastLogin stamps the account's last authenticated time
func (r *UserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE users
		SET last_login_at = $1, updated_at = $1
		WHERE id = $2
	`

	if _, err := r.db.ExecContext(ctx, query, time.Now(), id); err != nil {
		return fmt.Errorf("%w: failed to update last login: %v", errs.ErrUnavailable, err)
	}

	return nil
}
