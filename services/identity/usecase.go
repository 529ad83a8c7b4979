package identity

import (
	"context"

	"github.com/rajatks/sevakart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rajatks/sevakart/services/identity IdentityUC

// IdentityUC represents the identity usecase interface
type IdentityUC interface {
	// handle OTP
	GenerateOTP(ctx context.Context, phone string) (*models.OTPResult, error)
	VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error)

	// handle session rotation
	RefreshSession(ctx context.Context, refreshToken string) (*models.AuthResponse, error)

	// handle accounts
	RegisterUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
