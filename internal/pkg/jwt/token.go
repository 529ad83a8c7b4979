// Package jwt mints and verifies the access/refresh credential pair. The two
// tokens share claims but are signed with distinct secrets and expiry
// windows, so each verifies only against its own secret. There is no
// server-side revocation: a rotated pair does not invalidate its
// predecessor before that one's own expiry.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/rajatks/sevakart/internal/pkg/models"
)

// Claims carries the identity asserted by a verified token
type Claims struct {
	UserID uuid.UUID
	Phone  string
	Role   string
}

// TokenPair is a freshly minted access/refresh credential pair
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  int64
	RefreshExpiresAt int64
}

// GeneratePair mints an access and a refresh token for the given user
func GeneratePair(userID uuid.UUID, phone, role string, cfg models.JWTConfig) (*TokenPair, error) {
	accessToken, accessExp, err := sign(userID, phone, role, cfg.AccessSecret, cfg.Issuer, cfg.AccessExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, refreshExp, err := sign(userID, phone, role, cfg.RefreshSecret, cfg.Issuer, cfg.RefreshExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func sign(userID uuid.UUID, phone, role, secret, issuer string, expiryMinutes int) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(expiryMinutes) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"phone":   phone,
		"role":    role,
		"exp":     expiresAt,
		"iss":     issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// Verify validates a token against the given secret and returns its claims
func Verify(tokenString, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	userIDStr, _ := mapClaims["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id claim: %w", err)
	}

	phone, _ := mapClaims["phone"].(string)
	role, _ := mapClaims["role"].(string)

	return &Claims{
		UserID: userID,
		Phone:  phone,
		Role:   role,
	}, nil
}
