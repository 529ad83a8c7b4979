package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rajatks/sevakart/internal/pkg/errs"
	"github.com/rajatks/sevakart/internal/pkg/logger"
	"github.com/rajatks/sevakart/internal/pkg/models"
)

// UpdateBeacon toggles a provider's availability. An active beacon places
// the provider into the discoverable pool at the given coordinate, an
// inactive beacon removes them from it.
func (uc *DiscoveryUC) UpdateBeacon(ctx context.Context, providerID string, req *models.BeaconRequest) error {
	if providerID == "" {
		return fmt.Errorf("%w: provider id is required", errs.ErrInvalidInput)
	}

	if !req.IsActive {
		if err := uc.providerRepo.RemoveAvailableProvider(ctx, providerID); err != nil {
			return fmt.Errorf("failed to remove provider availability: %w", err)
		}
		logger.Info("Provider went offline", logger.String("provider_id", providerID))
		return nil
	}

	if err := validateCoordinate(req.Latitude, req.Longitude); err != nil {
		return err
	}
	location := &models.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: time.Now(),
	}
	if err := uc.providerRepo.AddAvailableProvider(ctx, providerID, location); err != nil {
		return fmt.Errorf("failed to add provider availability: %w", err)
	}
	logger.Info("Provider went online", logger.String("provider_id", providerID))
	return nil
}

// UpdateLocation refreshes an online provider's coordinate. Offline
// providers have no coordinate to refresh and are rejected.
func (uc *DiscoveryUC) UpdateLocation(ctx context.Context, providerID string, update *models.LocationUpdate) error {
	if providerID == "" {
		return fmt.Errorf("%w: provider id is required", errs.ErrInvalidInput)
	}
	if err := validateCoordinate(update.Latitude, update.Longitude); err != nil {
		return err
	}

	available, err := uc.providerRepo.IsProviderAvailable(ctx, providerID)
	if err != nil {
		return fmt.Errorf("failed to check provider availability: %w", err)
	}
	if !available {
		return fmt.Errorf("%w: provider is not online", errs.ErrInvalidInput)
	}

	location := &models.Location{
		Latitude:  update.Latitude,
		Longitude: update.Longitude,
		Timestamp: time.Now(),
	}
	if err := uc.providerRepo.UpdateProviderLocation(ctx, providerID, location); err != nil {
		return fmt.Errorf("failed to update provider location: %w", err)
	}
	return nil
}

func validateCoordinate(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude must be within [-90, 90]", errs.ErrInvalidInput)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude must be within [-180, 180]", errs.ErrInvalidInput)
	}
	return nil
}
