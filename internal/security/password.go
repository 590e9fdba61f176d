package security

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"regexp"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/config"
	securityerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/security/errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

//go:generate mockgen -source=password.go -destination=mock/password_mock.go -package=mock
type PasswordHasher interface {
	ValidatePassword(password string) error
	Hash(password string) (string, error)
	Verify(password, storedHash string) (bool, error)
}

type passwordHasher struct {
	pepper    string
	cost      int
	minLength int
}

func NewPasswordHasher(cfg config.SecurityConfig) PasswordHasher {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	minLength := cfg.MinPasswordLength
	if minLength == 0 {
		minLength = 8
	}
	return &passwordHasher{
		pepper:    cfg.PasswordPepper,
		cost:      cost,
		minLength: minLength,
	}
}

// ValidatePassword reports the first failing rule, checked in the order
// length, uppercase, lowercase, digit, special character.
func (h *passwordHasher) ValidatePassword(password string) error {
	switch {
	case len(password) < h.minLength:
		return securityerrors.ErrPasswordTooShort(h.minLength)
	case !upperRe.MatchString(password):
		return securityerrors.ErrPasswordNoUppercase
	case !lowerRe.MatchString(password):
		return securityerrors.ErrPasswordNoLowercase
	case !digitRe.MatchString(password):
		return securityerrors.ErrPasswordNoDigit
	case !specialRe.MatchString(password):
		return securityerrors.ErrPasswordNoSpecial
	}
	return nil
}

func (h *passwordHasher) Hash(password string) (string, error) {
	if err := h.ValidatePassword(password); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword(h.peppered(password), h.cost)
	if err != nil {
		return "", securityerrors.ErrHashFailed(err)
	}

	return base64.StdEncoding.EncodeToString(hashed), nil
}

// Verify returns false on mismatch. Only undecodable stored data is an error.
func (h *passwordHasher) Verify(password, storedHash string) (bool, error) {
	hashed, err := base64.StdEncoding.DecodeString(storedHash)
	if err != nil {
		return false, securityerrors.ErrMalformedHash(err)
	}

	err = bcrypt.CompareHashAndPassword(hashed, h.peppered(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, securityerrors.ErrMalformedHash(err)
	}
}

// peppered is the fixed-size bcrypt input: hex(sha256(password || pepper)).
func (h *passwordHasher) peppered(password string) []byte {
	sum := sha256.Sum256([]byte(password + h.pepper))
	return []byte(hex.EncodeToString(sum[:]))
}
