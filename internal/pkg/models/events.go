package models

import "time"

// Dispatch purposes recorded on the audit channel
const (
	PurposeLogin        = "login"
	PurposeRegistration = "registration"
)

// OTPDispatchEvent is published when a one-time code is handed to the
// out-of-band delivery channel. The code itself is never part of the event.
type OTPDispatchEvent struct {
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	Purpose    string    `json:"purpose"`
	Registered bool      `json:"registered"`
	SentAt     time.Time `json:"sent_at"`
}
