package models

import "github.com/google/uuid"

// NearbyRequest represents a provider discovery query. Zero values for
// RadiusMeters and Limit mean "use the defaults".
type NearbyRequest struct {
	ServiceID    string  `json:"service_id" query:"service_id"`
	Latitude     float64 `json:"latitude" query:"latitude"`
	Longitude    float64 `json:"longitude" query:"longitude"`
	RadiusMeters float64 `json:"radius_meters" query:"radius_meters"`
	Limit        int     `json:"limit" query:"limit"`
}

// Candidate is a provider snapshot produced for one discovery query. It is
// never persisted; the distance is computed at query time.
type Candidate struct {
	ProviderID     uuid.UUID `json:"provider_id"`
	FullName       string    `json:"fullname"`
	DistanceMeters float64   `json:"distance_meters"`
	Rating         float64   `json:"rating"`
	HourlyRate     *float64  `json:"hourly_rate,omitempty"`
	CompletedJobs  int       `json:"completed_jobs"`
	PhotoURL       string    `json:"photo_url,omitempty"`
}

// BeaconRequest toggles a provider's availability for discovery
type BeaconRequest struct {
	IsActive  bool    `json:"is_active"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationUpdate refreshes an online provider's last known position
type LocationUpdate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
