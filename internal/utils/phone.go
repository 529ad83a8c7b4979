package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// Indian mobile numbers are 10 digits and start with 6-9
var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// ValidatePhone validates a phone number and normalises it to the
// country-code form ("91" + 10 digits). Accepted inputs are the bare
// national number, a leading zero, or a +91/91 country prefix.
func ValidatePhone(phone string) (bool, string, error) {
	// Clean the input by removing separators
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove country code or trunk prefix if present
	if strings.HasPrefix(stripped, "91") && len(stripped) == 12 {
		stripped = stripped[2:]
	} else if strings.HasPrefix(stripped, "0") && len(stripped) == 11 {
		stripped = stripped[1:]
	}

	if !mobilePattern.MatchString(stripped) {
		return false, "", fmt.Errorf("invalid phone number format")
	}

	// Format with country code
	formatted := "91" + stripped

	return true, formatted, nil
}
