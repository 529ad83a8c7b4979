package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rajatks/sevakart/internal/pkg/errs"
	"github.com/rajatks/sevakart/internal/pkg/logger"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/internal/utils"
	"github.com/rajatks/sevakart/services/discovery"
)

// FinderHandler handles provider discovery HTTP requests
type FinderHandler struct {
	discoveryUC discovery.DiscoveryUC
}

// NewFinderHandler creates a new finder handler
func NewFinderHandler(discoveryUC discovery.DiscoveryUC) *FinderHandler {
	return &FinderHandler{discoveryUC: discoveryUC}
}

// FindNearby handles nearby provider queries
func (h *FinderHandler) FindNearby(c echo.Context) error {
	var req models.NearbyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request parameters")
	}
	if req.ServiceID == "" {
		return utils.BadRequestResponse(c, "service_id is required")
	}

	candidates, err := h.discoveryUC.FindNearbyProviders(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Failed to find nearby providers",
			logger.ErrorField(err),
			logger.String("endpoint", "FindNearby"))
		return writeDiscoveryError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Providers found", candidates)
}

// writeDiscoveryError maps the stable error kinds to HTTP responses
func writeDiscoveryError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, errs.ErrUnavailable):
		return utils.ServiceUnavailableResponse(c, "")
	default:
		return utils.InternalServerErrorResponse(c, "")
	}
}
