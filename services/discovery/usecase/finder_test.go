package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatks/sevakart/internal/pkg/errs"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/services/discovery/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Discovery: models.DiscoveryConfig{
			DefaultRadiusMeters: 5000,
			DefaultLimit:        10,
		},
	}
}

func TestFindNearbyProviders_DefaultsApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProviderRepo(ctrl)
	uc := NewDiscoveryUC(mockRepo, testConfig())

	req := &models.NearbyRequest{
		ServiceID: "plumbing",
		Latitude:  12.9716,
		Longitude: 77.5946,
	}

	mockRepo.EXPECT().
		FindNearby(gomock.Any(), "plumbing", 12.9716, 77.5946, 5000.0).
		Return([]models.Candidate{}, nil)

	candidates, err := uc.FindNearbyProviders(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestFindNearbyProviders_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.NearbyRequest
	}{
		{"missing service", &models.NearbyRequest{Latitude: 12.9, Longitude: 77.5}},
		{"latitude too high", &models.NearbyRequest{ServiceID: "plumbing", Latitude: 91, Longitude: 77.5}},
		{"latitude too low", &models.NearbyRequest{ServiceID: "plumbing", Latitude: -91, Longitude: 77.5}},
		{"longitude too high", &models.NearbyRequest{ServiceID: "plumbing", Latitude: 12.9, Longitude: 181}},
		{"radius too small", &models.NearbyRequest{ServiceID: "plumbing", Latitude: 12.9, Longitude: 77.5, RadiusMeters: 50}},
		{"radius too large", &models.NearbyRequest{ServiceID: "plumbing", Latitude: 12.9, Longitude: 77.5, RadiusMeters: 60000}},
		{"limit too large", &models.NearbyRequest{ServiceID: "plumbing", Latitude: 12.9, Longitude: 77.5, Limit: 51}},
		{"negative limit", &models.NearbyRequest{ServiceID: "plumbing", Latitude: 12.9, Longitude: 77.5, Limit: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := NewDiscoveryUC(mocks.NewMockProviderRepo(ctrl), testConfig())

			candidates, err := uc.FindNearbyProviders(context.Background(), tt.req)

			assert.Nil(t, candidates)
			assert.ErrorIs(t, err, errs.ErrInvalidInput)
		})
	}
}

func TestFindNearbyProviders_Ranking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProviderRepo(ctrl)
	uc := NewDiscoveryUC(mockRepo, testConfig())

	near := uuid.New()
	farHighRated := uuid.New()
	farExperienced := uuid.New()
	farNewcomer := uuid.New()

	// Repo returns distance order but with ties unresolved
	mockRepo.EXPECT().
		FindNearby(gomock.Any(), "plumbing", gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.Candidate{
			{ProviderID: near, DistanceMeters: 800, Rating: 3.0, CompletedJobs: 5},
			{ProviderID: farNewcomer, DistanceMeters: 2500, Rating: 4.5, CompletedJobs: 10},
			{ProviderID: farExperienced, DistanceMeters: 2500, Rating: 4.5, CompletedJobs: 200},
			{ProviderID: farHighRated, DistanceMeters: 2500, Rating: 4.9, CompletedJobs: 50},
		}, nil)

	candidates, err := uc.FindNearbyProviders(context.Background(), &models.NearbyRequest{
		ServiceID: "plumbing",
		Latitude:  12.9716,
		Longitude: 77.5946,
	})

	require.NoError(t, err)
	require.Len(t, candidates, 4)

	// Distance wins, then rating, then completed jobs
	assert.Equal(t, near, candidates[0].ProviderID)
	assert.Equal(t, farHighRated, candidates[1].ProviderID)
	assert.Equal(t, farExperienced, candidates[2].ProviderID)
	assert.Equal(t, farNewcomer, candidates[3].ProviderID)
}

func TestFindNearbyProviders_LimitTruncates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProviderRepo(ctrl)
	uc := NewDiscoveryUC(mockRepo, testConfig())

	results := make([]models.Candidate, 5)
	for i := range results {
		results[i] = models.Candidate{
			ProviderID:     uuid.New(),
			DistanceMeters: float64(100 * (i + 1)),
		}
	}
	mockRepo.EXPECT().
		FindNearby(gomock.Any(), "plumbing", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(results, nil)

	candidates, err := uc.FindNearbyProviders(context.Background(), &models.NearbyRequest{
		ServiceID: "plumbing",
		Latitude:  12.9716,
		Longitude: 77.5946,
		Limit:     2,
	})

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, results[0].ProviderID, candidates[0].ProviderID)
	assert.Equal(t, results[1].ProviderID, candidates[1].ProviderID)
}

func TestFindNearbyProviders_RepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProviderRepo(ctrl)
	uc := NewDiscoveryUC(mockRepo, testConfig())

	mockRepo.EXPECT().
		FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrUnavailable)

	candidates, err := uc.FindNearbyProviders(context.Background(), &models.NearbyRequest{
		ServiceID: "plumbing",
		Latitude:  12.9716,
		Longitude: 77.5946,
	})

	assert.Nil(t, candidates)
	assert.ErrorIs(t, err, errs.ErrUnavailable)
}
