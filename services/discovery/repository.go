package discovery

import (
	"context"

	"github.com/rajatks/sevakart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rajatks/sevakart/services/discovery ProviderRepo

// ProviderRepo defines the geospatial provider store interface. FindNearby
// returns eligible candidates within the radius ordered by distance
// ascending; quality tie-breaking is the usecase's concern.
type ProviderRepo interface {
	FindNearby(ctx context.Context, serviceID string, lat, lon, radiusMeters float64) ([]models.Candidate, error)

	AddAvailableProvider(ctx context.Context, providerID string, location *models.Location) error
	RemoveAvailableProvider(ctx context.Context, providerID string) error
	UpdateProviderLocation(ctx context.Context, providerID string, location *models.Location) error
	IsProviderAvailable(ctx context.Context, providerID string) (bool, error)
}
