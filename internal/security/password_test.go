package security_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/config"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/security"
	securityerrors "github.com/TheLeeJungYan/EINV-POS-API/internal/security/errors"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newHasher(pepper string) security.PasswordHasher {
	return security.NewPasswordHasher(config.SecurityConfig{
		PasswordPepper:    pepper,
		BcryptCost:        bcrypt.MinCost,
		MinPasswordLength: 8,
	})
}

func TestPasswordHasher_ValidatePassword(t *testing.T) {
	h := newHasher("pepper")

	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{name: "too short", password: "Ab1!", wantMsg: "Password must be at least 8 characters long"},
		{name: "no uppercase", password: "abcdefg1!", wantMsg: securityerrors.ErrPasswordNoUppercase.Message},
		{name: "no lowercase", password: "ABCDEFG1!", wantMsg: securityerrors.ErrPasswordNoLowercase.Message},
		{name: "no digit", password: "Abcdefgh!", wantMsg: securityerrors.ErrPasswordNoDigit.Message},
		{name: "no special", password: "Abcdefgh1", wantMsg: securityerrors.ErrPasswordNoSpecial.Message},
		{name: "short and weak reports length first", password: "abc", wantMsg: "Password must be at least 8 characters long"},
		{name: "valid", password: "Secret123!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.ValidatePassword(tt.password)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := newHasher("pepper")

	passwords := []string{"Secret123!", "An0ther{pass}", "Ünïcode1?Pass"}
	for _, p := range passwords {
		t.Run(p, func(t *testing.T) {
			hash, err := h.Hash(p)
			require.NoError(t, err)

			_, err = base64.StdEncoding.DecodeString(hash)
			assert.NoError(t, err, "hash must be base64 text")

			ok, err := h.Verify(p, hash)
			assert.NoError(t, err)
			assert.True(t, ok)

			ok, err = h.Verify(p+"x", hash)
			assert.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestPasswordHasher_LongPasswordsDoNotCollide(t *testing.T) {
	h := newHasher("pepper")

	// bcrypt alone ignores input past 72 bytes.
	prefix := "Aa1!" + strings.Repeat("abcdefgh", 10)

	hash, err := h.Hash(prefix + "X")
	require.NoError(t, err)

	ok, err := h.Verify(prefix+"Y", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_PepperBindsHash(t *testing.T) {
	hash, err := newHasher("pepper-a").Hash("Secret123!")
	require.NoError(t, err)

	ok, err := newHasher("pepper-b").Verify("Secret123!", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_Verify_Malformed(t *testing.T) {
	h := newHasher("pepper")

	t.Run("not base64", func(t *testing.T) {
		ok, err := h.Verify("Secret123!", "%%%")
		assert.False(t, ok)
		assert.True(t, apperror.IsCode(err, apperror.CodeSecurity))
	})

	t.Run("not a bcrypt hash", func(t *testing.T) {
		ok, err := h.Verify("Secret123!", base64.StdEncoding.EncodeToString([]byte("short")))
		assert.False(t, ok)
		assert.True(t, apperror.IsCode(err, apperror.CodeSecurity))
	})
}

func TestPasswordHasher_Hash_RejectsPolicyViolation(t *testing.T) {
	_, err := newHasher("pepper").Hash("password")
	assert.True(t, apperror.IsCode(err, apperror.CodeInvalidInput))
}
