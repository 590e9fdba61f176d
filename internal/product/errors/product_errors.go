package producterrors

import (
	"net/http"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)

	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"You do not own this product",
		http.StatusForbidden,
	)

	ErrNoCompany = apperror.New(
		apperror.CodeForbidden,
		"Only company accounts can manage products",
		http.StatusForbidden,
	)

	ErrInvalidPrice         = apperror.Validation("Price must be greater than 0")
	ErrNegativeOptionPrice  = apperror.Validation("Option price cannot be negative")
	ErrEmptyGroupName       = apperror.Validation("Option group name is required")
	ErrEmptyOptionGroup     = apperror.Validation("Option group must have at least one option")
	ErrEmptyOptionLabel     = apperror.Validation("Option label is required")
	ErrDefaultOutOfRange    = apperror.Validation("Option group default must point at one of its options")
	ErrDuplicateGroupName   = apperror.Validation("Option group names must be unique within a product")
	ErrDuplicateOptionLabel = apperror.Validation("Option labels must be unique within a group")
	ErrUnknownOptionGroup   = apperror.Validation("Unknown option group")
	ErrUnknownOption        = apperror.Validation("Unknown option")
	ErrImageTooLarge        = apperror.Validation("Image is too large")
	ErrImageRequired        = apperror.Validation("Image file is required")
)
