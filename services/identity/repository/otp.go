package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rajatks/sevakart/internal/pkg/constants"
	"github.com/rajatks/sevakart/internal/pkg/database"
	"github.com/rajatks/sevakart/internal/pkg/errs"
	"github.com/rajatks/sevakart/internal/pkg/models"
)

// The Redis key lives slightly longer than the code itself so a just-expired
// code is still reported as expired rather than absent.
const otpExpiryGrace = time.Minute

// consumeScript deletes the pending code only if it matches the submitted
// one. Running as a single script makes the match-and-delete atomic: with
// concurrent consumers exactly one sees 1, the rest see 0.
const consumeScript = `local v = redis.call('GET', KEYS[1])
if not v then return 0 end
local otp = cjson.decode(v)
if otp.code == ARGV[1] then
	redis.call('DEL', KEYS[1])
	return 1
end
return -1`

// OTPRepo is the Redis-backed store of pending one-time codes
type OTPRepo struct {
	redisClient *database.RedisClient
}

// NewOTPRepo creates a new OTP repository
func NewOTPRepo(redisClient *database.RedisClient) *OTPRepo {
	return &OTPRepo{redisClient: redisClient}
}

// Put stores a pending code for a phone, overwriting any existing one
func (r *OTPRepo) Put(ctx context.Context, phone, code string, ttl time.Duration) error {
	now := time.Now()
	otp := models.OTP{
		Phone:     phone,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	key := fmt.Sprintf(constants.KeyUserOTP, phone)
	if err := r.redisClient.Set(ctx, key, data, ttl+otpExpiryGrace); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	return nil
}

// Get returns the pending code for a phone, or ErrOTPNotFound
func (r *OTPRepo) Get(ctx context.Context, phone string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyUserOTP, phone)

	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: no pending code for phone", errs.ErrOTPNotFound)
		}
		return nil, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(data), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	return &otp, nil
}

// Remove deletes the pending code for a phone; removing an absent entry is
// not an error
func (r *OTPRepo) Remove(ctx context.Context, phone string) error {
	key := fmt.Sprintf(constants.KeyUserOTP, phone)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to remove OTP from Redis: %w", err)
	}
	return nil
}

// Consume atomically removes the pending code if it matches the submitted
// one. Exactly one of any concurrent consumers succeeds; the others get
// ErrOTPNotFound.
func (r *OTPRepo) Consume(ctx context.Context, phone, code string) error {
	key := fmt.Sprintf(constants.KeyUserOTP, phone)

	result, err := r.redisClient.Eval(ctx, consumeScript, []string{key}, code)
	if err != nil {
		return fmt.Errorf("failed to consume OTP: %w", err)
	}

	switch result {
	case int64(1):
		return nil
	case int64(0):
		return fmt.Errorf("%w: code already used or expired", errs.ErrOTPNotFound)
	default:
		// A re-issue raced the consume and replaced the code
		return fmt.Errorf("%w: code superseded", errs.ErrOTPMismatch)
	}
}
