package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rajatks/sevakart/internal/pkg/logger"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/internal/utils"
	"github.com/rajatks/sevakart/services/discovery"
)

// PresenceHandler handles provider availability HTTP requests
type PresenceHandler struct {
	discoveryUC discovery.DiscoveryUC
}

// NewPresenceHandler creates a new presence handler
func NewPresenceHandler(discoveryUC discovery.DiscoveryUC) *PresenceHandler {
	return &PresenceHandler{discoveryUC: discoveryUC}
}

// UpdateBeacon handles availability toggle requests from providers
func (h *PresenceHandler) UpdateBeacon(c echo.Context) error {
	providerID, ok := callerProviderID(c)
	if !ok {
		return utils.ForbiddenResponse(c, "Provider role required")
	}

	var req models.BeaconRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.discoveryUC.UpdateBeacon(c.Request().Context(), providerID, &req); err != nil {
		logger.Warn("Failed to update beacon",
			logger.ErrorField(err),
			logger.String("provider_id", providerID))
		return writeDiscoveryError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Beacon updated", map[string]bool{
		"is_active": req.IsActive,
	})
}

// UpdateLocation handles position refresh requests from online providers
func (h *PresenceHandler) UpdateLocation(c echo.Context) error {
	providerID, ok := callerProviderID(c)
	if !ok {
		return utils.ForbiddenResponse(c, "Provider role required")
	}

	var req models.LocationUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.discoveryUC.UpdateLocation(c.Request().Context(), providerID, &req); err != nil {
		logger.Warn("Failed to update location",
			logger.ErrorField(err),
			logger.String("provider_id", providerID))
		return writeDiscoveryError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// callerProviderID extracts the authenticated caller's id from the token
// claims and confirms the provider role
func callerProviderID(c echo.Context) (string, bool) {
	role, _ := c.Get("role").(string)
	if role != models.RoleProvider {
		return "", false
	}
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", false
	}
	return userID, true
}
