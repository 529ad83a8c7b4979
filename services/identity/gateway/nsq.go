package gateway

import (
	"context"
	"fmt"

	"github.com/rajatks/sevakart/internal/pkg/constants"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/internal/pkg/nsq"
)

// IdentityGW publishes identity audit events over NSQ
type IdentityGW struct {
	publisher nsq.Publisher
}

// NewIdentityGW creates a new identity gateway
func NewIdentityGW(publisher nsq.Publisher) *IdentityGW {
	return &IdentityGW{publisher: publisher}
}

// PublishOTPDispatch hands an OTP dispatch record to the delivery/audit
// topic. The code itself is never part of the event.
func (g *IdentityGW) PublishOTPDispatch(_ context.Context, event *models.OTPDispatchEvent) error {
	if err := g.publisher.Publish(constants.TopicOTPDispatch, event); err != nil {
		return fmt.Errorf("failed to publish OTP dispatch event: %w", err)
	}
	return nil
}
