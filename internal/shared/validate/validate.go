// Package validate holds the field format rules shared by registration and
// profile updates. Each check returns an INVALID_INPUT AppError.
package validate

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

var (
	nationalIDRe = regexp.MustCompile(`^\d{6}-\d{2}-\d{4}$`)
	phoneRe      = regexp.MustCompile(`^\+?[\d\s-]{8,20}$`)
	postalRe     = regexp.MustCompile(`^\d{5}$`)
	usernameRe   = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	ErrInvalidEmail      = apperror.Validation("Invalid email format")
	ErrInvalidNationalID = apperror.Validation("Invalid IC number format. Must be in format: XXXXXX-XX-XXXX")
	ErrInvalidPhone      = apperror.Validation("Invalid phone number format")
	ErrInvalidPostalCode = apperror.Validation("Invalid postal code format. Must be 5 digits")
	ErrInvalidUsername   = apperror.Validation("Username must be 3-50 characters of letters, numbers, underscores or hyphens")
	ErrInvalidBirthDate  = apperror.Validation("Invalid birth date. Must be in format: YYYY-MM-DD")
)

var (
	once sync.Once
	v    *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v = validator.New()
	})
	return v
}

func Email(email string) error {
	if err := engine().Var(strings.TrimSpace(email), "required,email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func NationalID(id string) error {
	if !nationalIDRe.MatchString(id) {
		return ErrInvalidNationalID
	}
	return nil
}

func Phone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

func PostalCode(code string) error {
	if !postalRe.MatchString(code) {
		return ErrInvalidPostalCode
	}
	return nil
}

func Username(username string) error {
	if len(username) < 3 || len(username) > 50 || !usernameRe.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// BirthDate parses YYYY-MM-DD and rejects dates in the future.
func BirthDate(s string, now time.Time) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil || d.After(now) {
		return time.Time{}, ErrInvalidBirthDate
	}
	return d, nil
}
