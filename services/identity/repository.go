package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rajatks/sevakart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rajatks/sevakart/services/identity UserRepo,OTPStore

// UserRepo defines the account directory interface
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetActiveUserByPhone(ctx context.Context, phone string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// OTPStore is the keyed storage of pending one-time codes. At most one code
// is live per phone; Put overwrites. Consume is the atomic compare-and-delete
// used on successful verification: under concurrent calls exactly one wins,
// the rest observe absence.
type OTPStore interface {
	Put(ctx context.Context, phone, code string, ttl time.Duration) error
	Get(ctx context.Context, phone string) (*models.OTP, error)
	Remove(ctx context.Context, phone string) error
	Consume(ctx context.Context, phone, code string) error
}
