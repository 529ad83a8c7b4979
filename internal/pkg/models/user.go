package models

import (
	"time"

	"github.com/google/uuid"
)

// Account roles form a closed set; anything else is rejected at the door.
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User represents an account in the marketplace (customer or service provider)
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Phone        string     `json:"phone" db:"phone"`
	FullName     string     `json:"fullname" db:"fullname"`
	Role         string     `json:"role" db:"role"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	ProviderInfo *Provider  `json:"provider_info,omitempty"`
}

// Provider holds the additional profile data for users who offer services
type Provider struct {
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Verified      bool      `json:"verified" db:"verified"`
	Rating        float64   `json:"rating" db:"rating"`
	CompletedJobs int       `json:"completed_jobs" db:"completed_jobs"`
	HourlyRate    *float64  `json:"hourly_rate,omitempty" db:"hourly_rate"`
	PhotoURL      string    `json:"photo_url,omitempty" db:"photo_url"`
	Bio           string    `json:"bio,omitempty" db:"bio"`
}

// Location represents a geographical point
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty" db:"timestamp"`
}
