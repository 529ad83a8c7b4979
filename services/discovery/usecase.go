package discovery

import (
	"context"

	"github.com/rajatks/sevakart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rajatks/sevakart/services/discovery DiscoveryUC

// DiscoveryUC represents the provider discovery usecase interface
type DiscoveryUC interface {
	// public discovery
	FindNearbyProviders(ctx context.Context, req *models.NearbyRequest) ([]models.Candidate, error)

	// provider presence
	UpdateBeacon(ctx context.Context, providerID string, req *models.BeaconRequest) error
	UpdateLocation(ctx context.Context, providerID string, req *models.LocationUpdate) error
}
