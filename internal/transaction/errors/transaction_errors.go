package transactionerrors

import (
	"net/http"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
)

var (
	ErrNoCompany = apperror.New(
		apperror.CodeForbidden,
		"Only company accounts can record transactions",
		http.StatusForbidden,
	)

	ErrCompanyNotFound     = apperror.NotFound("Company not found")
	ErrProductNotFound     = apperror.NotFound("Product not found")
	ErrPaymentTypeNotFound = apperror.NotFound("Payment type not found")

	ErrInvalidProductID = apperror.Validation("Invalid product ID")
	ErrInvalidDate      = apperror.Validation("Date must be in YYYY-MM-DD format")
)
