package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rajatks/sevakart/internal/pkg/errs"
	"github.com/rajatks/sevakart/internal/pkg/logger"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/internal/utils"
)

// RegisterUser creates a new customer account for a phone number
func (u *IdentityUC) RegisterUser(ctx context.Context, user *models.User) error {
	isValid, formattedPhone, err := utils.ValidatePhone(user.Phone)
	if err != nil || !isValid {
		return fmt.Errorf("%w: invalid phone number format", errs.ErrInvalidInput)
	}
	user.Phone = formattedPhone

	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	switch user.Role {
	case models.RoleCustomer, models.RoleProvider, models.RoleAdmin:
	default:
		return fmt.Errorf("%w: unknown role %q", errs.ErrInvalidInput, user.Role)
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.IsActive = true

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("Registered user",
		logger.String("user_id", user.ID.String()),
		logger.String("role", user.Role))

	return nil
}

// GetUserByID retrieves an account by ID
func (u *IdentityUC) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, id)
}
