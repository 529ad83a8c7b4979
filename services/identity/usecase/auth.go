package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/rajatks/sevakart/internal/pkg/errs"
	jwtpkg "github.com/rajatks/sevakart/internal/pkg/jwt"
	"github.com/rajatks/sevakart/internal/pkg/logger"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/internal/utils"
)

// GenerateOTP issues a new one-time code for the given phone number. Any
// previously pending code for the phone is overwritten: only the newest code
// is ever valid. The code itself is delivered out of band and never returned.
func (u *IdentityUC) GenerateOTP(ctx context.Context, phone string) (*models.OTPResult, error) {
	isValid, formattedPhone, err := utils.ValidatePhone(phone)
	if err != nil || !isValid {
		return nil, fmt.Errorf("%w: invalid phone number format", errs.ErrInvalidInput)
	}

	// Disclosing whether an account exists lets the client route to login
	// or registration; this is an intentional product behavior.
	registered := true
	purpose := models.PurposeLogin
	if _, err := u.userRepo.GetActiveUserByPhone(ctx, formattedPhone); err != nil {
		if !errors.Is(err, errs.ErrAccountNotFound) {
			return nil, fmt.Errorf("failed to look up account: %w", err)
		}
		registered = false
		purpose = models.PurposeRegistration
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	ttl := time.Duration(u.cfg.OTP.TTL) * time.Minute
	if err := u.otpStore.Put(ctx, formattedPhone, code, ttl); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	// Fire-and-forget: a dispatch failure must not fail the issuance
	event := &models.OTPDispatchEvent{
		Phone:      formattedPhone,
		Message:    "Your verification code is ready",
		Purpose:    purpose,
		Registered: registered,
		SentAt:     time.Now(),
	}
	if err := u.gw.PublishOTPDispatch(ctx, event); err != nil {
		logger.Warn("Failed to publish OTP dispatch event",
			logger.ErrorField(err),
			logger.String("phone", formattedPhone))
	}

	logger.Info("Generated OTP",
		logger.String("phone", formattedPhone),
		logger.Bool("registered", registered))

	return &models.OTPResult{Dispatched: true, Registered: registered}, nil
}

// VerifyOTP validates a submitted code and, on success, consumes it and
// mints a credential pair. A consumed code can never be verified again; two
// concurrent verifications of the same code produce exactly one winner.
func (u *IdentityUC) VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error) {
	isValid, formattedPhone, err := utils.ValidatePhone(phone)
	if err != nil || !isValid {
		return nil, fmt.Errorf("%w: invalid phone number format", errs.ErrInvalidInput)
	}
	if len(code) != otpCodeLength {
		return nil, fmt.Errorf("%w: OTP must be %d digits", errs.ErrInvalidInput, otpCodeLength)
	}

	otp, err := u.otpStore.Get(ctx, formattedPhone)
	if err != nil {
		return nil, err
	}

	if time.Now().After(otp.ExpiresAt) {
		if err := u.otpStore.Remove(ctx, formattedPhone); err != nil {
			logger.Warn("Failed to remove expired OTP",
				logger.ErrorField(err),
				logger.String("phone", formattedPhone))
		}
		return nil, fmt.Errorf("%w: code expired, request a new one", errs.ErrOTPExpired)
	}

	// The pending code stays on mismatch so the user can retry within the TTL
	if otp.Code != code {
		return nil, fmt.Errorf("%w: incorrect code", errs.ErrOTPMismatch)
	}

	// Atomic compare-and-delete; a concurrent winner leaves nothing behind
	if err := u.otpStore.Consume(ctx, formattedPhone, code); err != nil {
		return nil, err
	}

	// The account can legitimately vanish between issuance and verification
	user, err := u.userRepo.GetActiveUserByPhone(ctx, formattedPhone)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn("Failed to update last login",
			logger.ErrorField(err),
			logger.String("user_id", user.ID.String()))
	}

	pair, err := jwtpkg.GeneratePair(user.ID, user.Phone, user.Role, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate credential pair: %w", err)
	}

	return &models.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserID:       user.ID.String(),
		Role:         user.Role,
		ExpiresAt:    pair.AccessExpiresAt,
		User:         user,
	}, nil
}

const otpCodeLength = 6

// generateCode draws a uniformly random 6-digit code (100000-999999)
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
