package autherrors

import (
	"net/http"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials never says which half of the pair was wrong.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)

	ErrMissingToken = apperror.New(
		apperror.CodeUnauthorized,
		"Missing access token",
		http.StatusUnauthorized,
	)

	ErrUsernameExists = apperror.New(
		apperror.CodeConflict,
		"Username already registered",
		http.StatusConflict,
	)

	ErrEmailExists = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusConflict,
	)
)
