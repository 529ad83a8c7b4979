package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/rajatks/sevakart/internal/pkg/errs"
	"github.com/rajatks/sevakart/internal/pkg/logger"
	"github.com/rajatks/sevakart/internal/pkg/models"
)

// Parameter bounds for discovery queries
const (
	minRadiusMeters = 100
	maxRadiusMeters = 50000
	minLimit        = 1
	maxLimit        = 50
)

// FindNearbyProviders returns a ranked, bounded list of providers able to
// serve the given service at the given coordinate. Ranking is distance
// ascending, then rating descending, then completed jobs descending.
func (uc *DiscoveryUC) FindNearbyProviders(ctx context.Context, req *models.NearbyRequest) ([]models.Candidate, error) {
	if req.ServiceID == "" {
		return nil, fmt.Errorf("%w: service_id is required", errs.ErrInvalidInput)
	}
	if req.Latitude < -90 || req.Latitude > 90 {
		return nil, fmt.Errorf("%w: latitude must be within [-90, 90]", errs.ErrInvalidInput)
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return nil, fmt.Errorf("%w: longitude must be within [-180, 180]", errs.ErrInvalidInput)
	}

	radius := req.RadiusMeters
	if radius == 0 {
		radius = uc.cfg.Discovery.DefaultRadiusMeters
	}
	if radius < minRadiusMeters || radius > maxRadiusMeters {
		return nil, fmt.Errorf("%w: radius_meters must be within [%d, %d]", errs.ErrInvalidInput, minRadiusMeters, maxRadiusMeters)
	}

	limit := req.Limit
	if limit == 0 {
		limit = uc.cfg.Discovery.DefaultLimit
	}
	if limit < minLimit || limit > maxLimit {
		return nil, fmt.Errorf("%w: limit must be within [%d, %d]", errs.ErrInvalidInput, minLimit, maxLimit)
	}

	candidates, err := uc.providerRepo.FindNearby(ctx, req.ServiceID, req.Latitude, req.Longitude, radius)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby providers: %w", err)
	}

	// Proximity dominates, then demonstrated quality, then experience
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].DistanceMeters != candidates[j].DistanceMeters {
			return candidates[i].DistanceMeters < candidates[j].DistanceMeters
		}
		if candidates[i].Rating != candidates[j].Rating {
			return candidates[i].Rating > candidates[j].Rating
		}
		return candidates[i].CompletedJobs > candidates[j].CompletedJobs
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	logger.Debug("Nearby providers found",
		logger.String("service_id", req.ServiceID),
		logger.Int("count", len(candidates)))

	return candidates, nil
}
