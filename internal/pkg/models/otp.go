package models

import "time"

// OTP is a pending one-time code for a phone number. At most one pending
// code exists per phone: re-issuing overwrites the previous entry.
type OTP struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginRequest represents a request to start the OTP login flow
type LoginRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// OTPResult is the response to an OTP generation request. Registered
// deliberately discloses whether an active account exists for the phone so
// the client can route to login or registration.
type OTPResult struct {
	Dispatched bool `json:"dispatched"`
	Registered bool `json:"registered"`
}

// VerifyRequest represents a request to verify an OTP
type VerifyRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// RefreshRequest represents a request to rotate a credential pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse carries a freshly minted credential pair. The access and
// refresh tokens are independent bearer assertions: rotating a pair does not
// invalidate the previous one before its own expiry.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
	ExpiresAt    int64  `json:"expires_at"`
	User         *User  `json:"user,omitempty"`
}
