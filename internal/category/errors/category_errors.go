package categoryerrors

import "github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"

var (
	ErrCategoryNotFound  = apperror.NotFound("Category not found")
	ErrCategoryExists    = apperror.Conflict("Category name already exists")
	ErrInvalidCategoryID = apperror.Validation("Invalid category ID")
	ErrEmptyName         = apperror.Validation("Category name is required")
)
