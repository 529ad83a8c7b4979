package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatks/sevakart/internal/pkg/errs"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/services/discovery/mocks"
)

func performAuthedJSON(t *testing.T, handler echo.HandlerFunc, body, userID, role string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	if role != "" {
		c.Set("role", role)
	}

	require.NoError(t, handler(c))
	return rec
}

func TestPresenceHandler_UpdateBeacon_Online(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDiscoveryUC(ctrl)
	handler := NewPresenceHandler(mockUC)

	mockUC.EXPECT().
		UpdateBeacon(gomock.Any(), "provider-1", &models.BeaconRequest{
			IsActive:  true,
			Latitude:  12.9716,
			Longitude: 77.5946,
		}).
		Return(nil)

	rec := performAuthedJSON(t, handler.UpdateBeacon,
		`{"is_active":true,"latitude":12.9716,"longitude":77.5946}`,
		"provider-1", models.RoleProvider)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPresenceHandler_UpdateBeacon_CustomerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPresenceHandler(mocks.NewMockDiscoveryUC(ctrl))

	rec := performAuthedJSON(t, handler.UpdateBeacon,
		`{"is_active":true,"latitude":12.9716,"longitude":77.5946}`,
		"customer-1", models.RoleCustomer)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPresenceHandler_UpdateBeacon_MissingClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPresenceHandler(mocks.NewMockDiscoveryUC(ctrl))

	rec := performAuthedJSON(t, handler.UpdateBeacon, `{"is_active":true}`, "", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPresenceHandler_UpdateLocation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDiscoveryUC(ctrl)
	handler := NewPresenceHandler(mockUC)

	mockUC.EXPECT().
		UpdateLocation(gomock.Any(), "provider-1", &models.LocationUpdate{
			Latitude:  12.9767,
			Longitude: 77.5713,
		}).
		Return(nil)

	rec := performAuthedJSON(t, handler.UpdateLocation,
		`{"latitude":12.9767,"longitude":77.5713}`,
		"provider-1", models.RoleProvider)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPresenceHandler_UpdateLocation_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDiscoveryUC(ctrl)
	handler := NewPresenceHandler(mockUC)

	mockUC.EXPECT().
		UpdateLocation(gomock.Any(), "provider-1", gomock.Any()).
		Return(errs.ErrInvalidInput)

	rec := performAuthedJSON(t, handler.UpdateLocation,
		`{"latitude":12.9767,"longitude":77.5713}`,
		"provider-1", models.RoleProvider)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
