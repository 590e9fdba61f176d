package securityerrors

import (
	"fmt"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
)

var (
	ErrPasswordNoUppercase = apperror.Validation("Password must contain at least one uppercase letter")
	ErrPasswordNoLowercase = apperror.Validation("Password must contain at least one lowercase letter")
	ErrPasswordNoDigit     = apperror.Validation("Password must contain at least one number")
	ErrPasswordNoSpecial   = apperror.Validation("Password must contain at least one special character")

	ErrInvalidToken     = apperror.Authentication("Invalid token")
	ErrTokenExpired     = apperror.Authentication("Token has expired")
	ErrInvalidTokenType = apperror.Authentication("Invalid token type")
)

func ErrPasswordTooShort(min int) *apperror.AppError {
	return apperror.Validation(fmt.Sprintf("Password must be at least %d characters long", min))
}

func ErrMissingClaim(claim string) *apperror.AppError {
	return apperror.Authentication(fmt.Sprintf("Token is missing required claim: %s", claim))
}

func ErrHashFailed(err error) *apperror.AppError {
	return apperror.Security("Error hashing password", err)
}

func ErrMalformedHash(err error) *apperror.AppError {
	return apperror.Security("Stored password hash is malformed", err)
}

func ErrSigningFailed(err error) *apperror.AppError {
	return apperror.Security("Error creating token", err)
}
