package companyerrors

import (
	"net/http"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrNationalIDExists = apperror.New(
		apperror.CodeConflict,
		"National ID already registered",
		http.StatusConflict,
	)

	ErrBusinessRegNumberExists = apperror.New(
		apperror.CodeConflict,
		"Business registration number already registered",
		http.StatusConflict,
	)

	ErrTaxRegNumberExists = apperror.New(
		apperror.CodeConflict,
		"Tax registration number already registered",
		http.StatusConflict,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrNoCompany = apperror.New(
		apperror.CodeForbidden,
		"This account does not belong to a company",
		http.StatusForbidden,
	)
)
