package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// Validation reports malformed input. It is always raised before any write.
func Validation(message string) *AppError {
	return New(CodeInvalidInput, message, http.StatusBadRequest)
}

func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

func Authentication(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func Authorization(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// Security wraps an internal cryptographic failure.
func Security(message string, err error) *AppError {
	return &AppError{
		Code:       CodeSecurity,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IO wraps a failure of an external storage or upload collaborator.
func IO(message string, err error) *AppError {
	return &AppError{
		Code:       CodeIO,
		Message:    message,
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func RequiredField(field string) *AppError {
	return Validation(fmt.Sprintf("%s is required", field))
}

func InvalidField(field string) *AppError {
	return Validation(fmt.Sprintf("%s is invalid", field))
}
