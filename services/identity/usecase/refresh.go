package usecase

import (
	"context"
	"fmt"

	"github.com/rajatks/sevakart/internal/pkg/errs"
	jwtpkg "github.com/rajatks/sevakart/internal/pkg/jwt"
	"github.com/rajatks/sevakart/internal/pkg/models"
)

// RefreshSession exchanges a valid refresh token for a new credential pair.
// The old refresh token is not revoked; both pairs stay valid until their
// own expiry.
func (u *IdentityUC) RefreshSession(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	// An access token presented here fails too: it does not verify under
	// the refresh secret.
	claims, err := jwtpkg.Verify(refreshToken, u.cfg.JWT.RefreshSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidCredential, err)
	}

	user, err := u.userRepo.GetUserByID(ctx, claims.UserID.String())
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is deactivated", errs.ErrAccountNotFound)
	}

	pair, err := jwtpkg.GeneratePair(user.ID, user.Phone, user.Role, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate credential pair: %w", err)
	}

	return &models.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserID:       user.ID.String(),
		Role:         user.Role,
		ExpiresAt:    pair.AccessExpiresAt,
	}, nil
}
