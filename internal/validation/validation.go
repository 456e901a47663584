// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateName checks that a display name is present.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("Name is required")
	}
	return nil
}

// ValidateEmail checks basic email format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("Please include a valid email")
	}
	if len(email) > 254 {
		return fmt.Errorf("Email must not exceed 254 characters")
	}
	return nil
}

// ValidatePassword checks the accepted password length range.
func ValidatePassword(password string) error {
	if len(password) < 6 || len(password) > 30 {
		return fmt.Errorf("Please enter a password between 6 and 30 characters")
	}
	return nil
}
