package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rajatks/sevakart/internal/pkg/constants"
	"github.com/rajatks/sevakart/internal/pkg/database"
	"github.com/rajatks/sevakart/internal/pkg/errs"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/internal/utils"
)

const (
	// Geohash precision of ~150m cells, coarse enough for neighbourhood
	// grouping without leaking exact positions
	cellPrecision = 6

	// Upper bound on the raw geo query; eligibility filtering happens
	// after this cut, so it is deliberately larger than any client limit
	geoFetchLimit = 100
)

// ProviderRepo implements discovery.ProviderRepo over a Redis geo index
// for presence and Postgres for eligibility and profile data
type ProviderRepo struct {
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewProviderRepo creates a new provider repository
func NewProviderRepo(db *sqlx.DB, cache *database.RedisClient) *ProviderRepo {
	return &ProviderRepo{
		db:    db,
		cache: cache,
	}
}

type candidateRow struct {
	ProviderID    uuid.UUID `db:"id"`
	FullName      string    `db:"fullname"`
	Rating        float64   `db:"rating"`
	HourlyRate    *float64  `db:"hourly_rate"`
	CompletedJobs int       `db:"completed_jobs"`
	PhotoURL      string    `db:"photo_url"`
}

// FindNearby returns eligible providers within the radius, ordered by
// distance ascending. A provider is eligible when they are available,
// verified, their account is active, and they actively offer the service.
func (r *ProviderRepo) FindNearby(ctx context.Context, serviceID string, lat, lon, radiusMeters float64) ([]models.Candidate, error) {
	locations, err := r.cache.GeoRadius(ctx, constants.KeyProviderGeo, lon, lat, radiusMeters, "m", geoFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: geo query failed: %v", errs.ErrUnavailable, err)
	}
	if len(locations) == 0 {
		return []models.Candidate{}, nil
	}

	// The geo index may retain members whose beacon has since gone dark;
	// the availability set is authoritative
	distances := make(map[string]float64, len(locations))
	ids := make([]string, 0, len(locations))
	for _, loc := range locations {
		available, err := r.cache.SIsMember(ctx, constants.KeyAvailableProviders, loc.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: availability check failed: %v", errs.ErrUnavailable, err)
		}
		if !available {
			continue
		}
		distances[loc.Name] = loc.Dist
		ids = append(ids, loc.Name)
	}
	if len(ids) == 0 {
		return []models.Candidate{}, nil
	}

	rows, err := r.eligibleProviders(ctx, serviceID, ids)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, models.Candidate{
			ProviderID:     row.ProviderID,
			FullName:       row.FullName,
			DistanceMeters: distances[row.ProviderID.String()],
			Rating:         row.Rating,
			HourlyRate:     row.HourlyRate,
			CompletedJobs:  row.CompletedJobs,
			PhotoURL:       row.PhotoURL,
		})
	}
	return candidates, nil
}

func (r *ProviderRepo) eligibleProviders(ctx context.Context, serviceID string, ids []string) ([]candidateRow, error) {
	query, args, err := sqlx.In(`
		SELECT u.id, u.fullname, p.rating, p.hourly_rate, p.completed_jobs, p.photo_url
		FROM users u
		JOIN providers p ON p.user_id = u.id
		JOIN provider_services ps ON ps.provider_id = u.id
		WHERE ps.service_id = ?
		  AND ps.is_active = true
		  AND u.is_active = true
		  AND p.verified = true
		  AND u.id IN (?)`, serviceID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build eligibility query: %w", err)
	}

	var rows []candidateRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("%w: eligibility query failed: %v", errs.ErrUnavailable, err)
	}
	return rows, nil
}

// AddAvailableProvider marks a provider as discoverable at the given
// coordinate
func (r *ProviderRepo) AddAvailableProvider(ctx context.Context, providerID string, location *models.Location) error {
	if err := r.cache.SAdd(ctx, constants.KeyAvailableProviders, providerID); err != nil {
		return fmt.Errorf("%w: failed to mark provider available: %v", errs.ErrUnavailable, err)
	}
	return r.writeLocation(ctx, providerID, location)
}

// RemoveAvailableProvider withdraws a provider from discovery
func (r *ProviderRepo) RemoveAvailableProvider(ctx context.Context, providerID string) error {
	if err := r.cache.SRem(ctx, constants.KeyAvailableProviders, providerID); err != nil {
		return fmt.Errorf("%w: failed to mark provider unavailable: %v", errs.ErrUnavailable, err)
	}
	if err := r.cache.GeoRemove(ctx, constants.KeyProviderGeo, providerID); err != nil {
		return fmt.Errorf("%w: failed to remove provider position: %v", errs.ErrUnavailable, err)
	}
	if err := r.cache.HDel(ctx, constants.KeyProviderCells, providerID); err != nil {
		return fmt.Errorf("%w: failed to remove provider cell: %v", errs.ErrUnavailable, err)
	}
	return nil
}

// UpdateProviderLocation refreshes a provider's position in the geo index
func (r *ProviderRepo) UpdateProviderLocation(ctx context.Context, providerID string, location *models.Location) error {
	return r.writeLocation(ctx, providerID, location)
}

// IsProviderAvailable reports whether the provider currently has an
// active beacon
func (r *ProviderRepo) IsProviderAvailable(ctx context.Context, providerID string) (bool, error) {
	available, err := r.cache.SIsMember(ctx, constants.KeyAvailableProviders, providerID)
	if err != nil {
		return false, fmt.Errorf("%w: availability check failed: %v", errs.ErrUnavailable, err)
	}
	return available, nil
}

func (r *ProviderRepo) writeLocation(ctx context.Context, providerID string, location *models.Location) error {
	if err := r.cache.GeoAdd(ctx, constants.KeyProviderGeo, location.Longitude, location.Latitude, providerID); err != nil {
		return fmt.Errorf("%w: failed to store provider position: %v", errs.ErrUnavailable, err)
	}
	cell := utils.EncodeLocation(location.Latitude, location.Longitude, cellPrecision)
	if err := r.cache.HSet(ctx, constants.KeyProviderCells, providerID, cell); err != nil {
		return fmt.Errorf("%w: failed to store provider cell: %v", errs.ErrUnavailable, err)
	}
	return nil
}
