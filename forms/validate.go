// Package forms validates form input before any write reaches the store.
package forms

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/rpupo63/nexusconsult-backend/errs"
)

// MinPasswordLength is the shortest password registration accepts.
const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Errors maps a field name to its message.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

// Err returns nil for valid input, otherwise a 400 ApiErr carrying every field message.
func (e Errors) Err() error {
	if e.Valid() {
		return nil
	}
	fields := make(map[string]string, len(e))
	for k, v := range e {
		fields[k] = v
	}
	return errs.NewValidationError(fields)
}

// Require records msg for field when value is blank.
func (e Errors) Require(field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		e[field] = msg
	}
}

// ValidateEmail returns the message for an invalid address, or "" when it is valid.
func ValidateEmail(email string) string {
	switch {
	case strings.TrimSpace(email) == "":
		return "Email is required"
	case !emailPattern.MatchString(email):
		return "Email is invalid"
	}
	return ""
}

// ValidatePassword returns the message for a weak password, or "" when it is valid.
func ValidatePassword(password string) string {
	if password == "" {
		return "Password is required"
	}
	if len([]rune(password)) < MinPasswordLength {
		return "Password must be at least 8 characters"
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	}
	return ""
}

func (e Errors) email(field, value string) {
	if msg := ValidateEmail(value); msg != "" {
		e[field] = msg
	}
}
