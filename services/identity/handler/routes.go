package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rajatks/sevakart/internal/pkg/middleware"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/services/identity/handler/http"
)

// Handler coordinates the HTTP handlers for the identity service
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all identity handlers
func NewHandler(
	authHandler *http.AuthHandler,
	userHandler *http.UserHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the identity routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/otp/generate", h.authHandler.GenerateOTP)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)
	authGroup.POST("/refresh", h.authHandler.RefreshSession)

	// Registration is public; profile reads require a session
	e.POST("/users", h.userHandler.CreateUser)

	protected := e.Group("/users", middleware.JWTMiddleware(h.cfg.JWT))
	protected.GET("/:id", h.userHandler.GetUser)
}
