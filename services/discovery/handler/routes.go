package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rajatks/sevakart/internal/pkg/middleware"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/services/discovery/handler/http"
)

// Handler coordinates the HTTP handlers for the discovery service
type Handler struct {
	finderHandler   *http.FinderHandler
	presenceHandler *http.PresenceHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all discovery handlers
func NewHandler(
	finderHandler *http.FinderHandler,
	presenceHandler *http.PresenceHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		finderHandler:   finderHandler,
		presenceHandler: presenceHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers the discovery routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Discovery is open to prospective customers; presence writes are
	// reserved for authenticated providers
	e.GET("/providers/nearby", h.finderHandler.FindNearby)

	presence := e.Group("/providers", middleware.JWTMiddleware(h.cfg.JWT))
	presence.POST("/beacon", h.presenceHandler.UpdateBeacon)
	presence.POST("/location", h.presenceHandler.UpdateLocation)
}
