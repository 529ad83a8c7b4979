package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rajatks/sevakart/internal/pkg/logger"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/internal/utils"
	"github.com/rajatks/sevakart/services/identity"
)

// UserHandler handles HTTP requests for account operations
type UserHandler struct {
	identityUC identity.IdentityUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(identityUC identity.IdentityUC) *UserHandler {
	return &UserHandler{identityUC: identityUC}
}

// CreateUser handles account registration requests
func (h *UserHandler) CreateUser(c echo.Context) error {
	var user models.User
	if err := c.Bind(&user); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.identityUC.RegisterUser(c.Request().Context(), &user); err != nil {
		logger.Error("Failed to create user",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateUser"))
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User created successfully", user)
}

// GetUser handles account retrieval requests
func (h *UserHandler) GetUser(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.identityUC.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}
