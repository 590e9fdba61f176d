package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestIsCode(t *testing.T) {
	t.Run("wrapped app error", func(t *testing.T) {
		err := fmt.Errorf("create product: %w", apperror.Validation("price must be greater than 0"))
		assert.True(t, apperror.IsCode(err, apperror.CodeInvalidInput))
		assert.False(t, apperror.IsCode(err, apperror.CodeConflict))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.False(t, apperror.IsCode(errors.New("boom"), apperror.CodeInvalidInput))
	})
}

func TestToHTTP(t *testing.T) {
	t.Run("client error keeps its message", func(t *testing.T) {
		res := apperror.ToHTTP(apperror.Conflict("National ID already registered"))
		assert.Equal(t, http.StatusConflict, res.Status)
		assert.Equal(t, apperror.CodeConflict, res.Code)
		assert.Equal(t, "National ID already registered", res.Message)
	})

	t.Run("unknown error is generic", func(t *testing.T) {
		res := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, res.Status)
		assert.Equal(t, apperror.CodeInternalError, res.Code)
		assert.NotContains(t, res.Message, "pq")
	})

	t.Run("io error maps to bad gateway", func(t *testing.T) {
		res := apperror.ToHTTP(apperror.IO("upload failed", errors.New("timeout")))
		assert.Equal(t, http.StatusBadGateway, res.Status)
		assert.Equal(t, "upload failed", res.Message)
	})
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		PhoneNumber string `validate:"required"`
	}

	v := validator.New()
	err := v.Struct(payload{})

	mapped := apperror.MapValidationError(err)
	appErr, ok := apperror.As(mapped)
	assert.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	assert.Equal(t, "Phonenumber is required", appErr.Message)
}
