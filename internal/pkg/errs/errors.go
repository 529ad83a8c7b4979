// Package errs defines the stable error kinds surfaced by the identity and
// discovery flows. Callers classify failures with errors.Is; layers add
// context with fmt.Errorf("...: %w", err) without changing the kind.
package errs

import "errors"

var (
	// ErrInvalidInput marks malformed identifiers, codes or geo parameters.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOTPNotFound means no pending code exists for the phone. A caller
	// recovers by requesting a new code.
	ErrOTPNotFound = errors.New("otp not found")

	// ErrOTPExpired means the pending code outlived its validity window.
	// The entry is removed as a side effect of detection.
	ErrOTPExpired = errors.New("otp expired")

	// ErrOTPMismatch means the submitted code differs from the pending one.
	// The pending code stays valid for further attempts within its TTL.
	ErrOTPMismatch = errors.New("otp mismatch")

	// ErrAccountNotFound means the account vanished or is inactive.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidCredential marks a bad, expired or malformed signed token.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrUnavailable marks an external collaborator failure or timeout;
	// recoverable by retrying with backoff.
	ErrUnavailable = errors.New("service unavailable")
)
