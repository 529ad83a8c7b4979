package identity

import (
	"context"

	"github.com/rajatks/sevakart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/rajatks/sevakart/services/identity IdentityGW

// IdentityGW defines the identity gateways interface
type IdentityGW interface {
	// Audit/dispatch channel; fire-and-forget from the caller's side
	PublishOTPDispatch(ctx context.Context, event *models.OTPDispatchEvent) error
}
