package apperror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// owner_national_id -> Owner National Id
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts binding errors into an INVALID_INPUT AppError
// describing the first offending field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "email":
			return Validation("Invalid email format")
		case "min", "max", "len":
			return Validation(fmt.Sprintf("%s must satisfy %s=%s", field, e.Tag(), e.Param()))
		default:
			return InvalidField(field)
		}
	}

	return Validation("Invalid input")
}
