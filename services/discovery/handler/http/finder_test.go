package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatks/sevakart/internal/pkg/errs"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/internal/utils"
	"github.com/rajatks/sevakart/services/discovery/mocks"
)

func performGet(t *testing.T, handler echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec
}

func TestFinderHandler_FindNearby_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDiscoveryUC(ctrl)
	handler := NewFinderHandler(mockUC)

	providerID := uuid.New()
	mockUC.EXPECT().
		FindNearbyProviders(gomock.Any(), &models.NearbyRequest{
			ServiceID:    "plumbing",
			Latitude:     12.9716,
			Longitude:    77.5946,
			RadiusMeters: 2000,
			Limit:        5,
		}).
		Return([]models.Candidate{
			{ProviderID: providerID, FullName: "Ravi Kumar", DistanceMeters: 1200.5, Rating: 4.2},
		}, nil)

	rec := performGet(t, handler.FindNearby,
		"/providers/nearby?service_id=plumbing&latitude=12.9716&longitude=77.5946&radius_meters=2000&limit=5")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.([]interface{})
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, providerID.String(), first["provider_id"])
	assert.Equal(t, 1200.5, first["distance_meters"])
}

func TestFinderHandler_FindNearby_MissingService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewFinderHandler(mocks.NewMockDiscoveryUC(ctrl))

	rec := performGet(t, handler.FindNearby, "/providers/nearby?latitude=12.9716&longitude=77.5946")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinderHandler_FindNearby_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDiscoveryUC(ctrl)
	handler := NewFinderHandler(mockUC)

	mockUC.EXPECT().
		FindNearbyProviders(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrInvalidInput)

	rec := performGet(t, handler.FindNearby, "/providers/nearby?service_id=plumbing&latitude=95&longitude=77.5946")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinderHandler_FindNearby_StoreDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDiscoveryUC(ctrl)
	handler := NewFinderHandler(mockUC)

	mockUC.EXPECT().
		FindNearbyProviders(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrUnavailable)

	rec := performGet(t, handler.FindNearby, "/providers/nearby?service_id=plumbing&latitude=12.9716&longitude=77.5946")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
