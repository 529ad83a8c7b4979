package usecase

import (
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/services/identity"
)

type IdentityUC struct {
	userRepo identity.UserRepo
	otpStore identity.OTPStore
	gw       identity.IdentityGW
	cfg      *models.Config
}

// NewIdentityUC creates a new identity usecase instance
func NewIdentityUC(
	userRepo identity.UserRepo,
	otpStore identity.OTPStore,
	gw identity.IdentityGW,
	cfg *models.Config,
) *IdentityUC {
	return &IdentityUC{
		userRepo: userRepo,
		otpStore: otpStore,
		gw:       gw,
		cfg:      cfg,
	}
}
