package validate_test

import (
	"testing"
	"time"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/validate"

	"github.com/stretchr/testify/assert"
)

func TestFormats(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) error
		ok    []string
		bad   []string
	}{
		{
			name:  "email",
			check: validate.Email,
			ok:    []string{"owner@kedai.my", "a.b+c@example.co"},
			bad:   []string{"", "owner", "owner@", "@kedai.my"},
		},
		{
			name:  "national id",
			check: validate.NationalID,
			ok:    []string{"900101-14-5678"},
			bad:   []string{"900101145678", "90010-14-5678", "900101-14-567a"},
		},
		{
			name:  "phone",
			check: validate.Phone,
			ok:    []string{"+60 12-345 6789", "0123456789"},
			bad:   []string{"1234", "phone-number", "+60 12 345 6789 0000 1111"},
		},
		{
			name:  "postal code",
			check: validate.PostalCode,
			ok:    []string{"50450"},
			bad:   []string{"5045", "504500", "5045a"},
		},
		{
			name:  "username",
			check: validate.Username,
			ok:    []string{"kedai_01", "abc", "a-b"},
			bad:   []string{"ab", "has space", "semi;colon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.ok {
				assert.NoError(t, tt.check(s), s)
			}
			for _, s := range tt.bad {
				assert.Error(t, tt.check(s), s)
			}
		})
	}
}

func TestBirthDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	d, err := validate.BirthDate("1990-01-01", now)
	assert.NoError(t, err)
	assert.Equal(t, 1990, d.Year())

	_, err = validate.BirthDate("01/01/1990", now)
	assert.ErrorIs(t, err, validate.ErrInvalidBirthDate)

	_, err = validate.BirthDate("2030-01-01", now)
	assert.ErrorIs(t, err, validate.ErrInvalidBirthDate)
}
