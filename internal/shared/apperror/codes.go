package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"

	// Server errors (5xx)
	CodeSecurity      = "SECURITY_ERROR"
	CodeIO            = "IO_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)
