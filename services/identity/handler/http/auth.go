package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rajatks/sevakart/internal/pkg/errs"
	"github.com/rajatks/sevakart/internal/pkg/logger"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/internal/utils"
	"github.com/rajatks/sevakart/services/identity"
)

// AuthHandler handles HTTP requests for the OTP and session flows
type AuthHandler struct {
	identityUC identity.IdentityUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identityUC identity.IdentityUC) *AuthHandler {
	return &AuthHandler{identityUC: identityUC}
}

// GenerateOTP handles OTP generation requests
func (h *AuthHandler) GenerateOTP(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "phone is required")
	}

	result, err := h.identityUC.GenerateOTP(c.Request().Context(), req.Phone)
	if err != nil {
		logger.Warn("Failed to generate OTP",
			logger.ErrorField(err),
			logger.String("endpoint", "GenerateOTP"))
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", result)
}

// VerifyOTP handles OTP verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "phone and otp are required")
	}

	resp, err := h.identityUC.VerifyOTP(c.Request().Context(), req.Phone, req.OTP)
	if err != nil {
		logger.Warn("Failed to verify OTP",
			logger.ErrorField(err),
			logger.String("endpoint", "VerifyOTP"))
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Authentication successful", resp)
}

// RefreshSession handles credential rotation requests
func (h *AuthHandler) RefreshSession(c echo.Context) error {
	var req models.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.RefreshToken == "" {
		return utils.BadRequestResponse(c, "refresh_token is required")
	}

	resp, err := h.identityUC.RefreshSession(c.Request().Context(), req.RefreshToken)
	if err != nil {
		logger.Warn("Failed to refresh session",
			logger.ErrorField(err),
			logger.String("endpoint", "RefreshSession"))
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session refreshed", resp)
}

// writeAuthError maps the stable error kinds to HTTP responses
func writeAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, errs.ErrOTPNotFound):
		return utils.NotFoundResponse(c, "OTP not found, request a new code")
	case errors.Is(err, errs.ErrOTPExpired):
		return utils.BadRequestResponse(c, "OTP expired, request a new code")
	case errors.Is(err, errs.ErrOTPMismatch):
		return utils.UnauthorizedResponse(c, "Incorrect OTP")
	case errors.Is(err, errs.ErrAccountNotFound):
		return utils.NotFoundResponse(c, "Account not found")
	case errors.Is(err, errs.ErrInvalidCredential):
		return utils.UnauthorizedResponse(c, "Invalid or expired credential")
	case errors.Is(err, errs.ErrUnavailable):
		return utils.ServiceUnavailableResponse(c, "")
	default:
		return utils.InternalServerErrorResponse(c, "")
	}
}
