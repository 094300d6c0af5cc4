package domain

// ErrorCode clasifica fallas visibles al cliente.
type ErrorCode string

const (
	CodeMissingFields      ErrorCode = "MISSING_FIELDS"
	CodeInvalidType        ErrorCode = "INVALID_TYPE"
	CodeValidationErr      ErrorCode = "VALIDATION_ERR"
	CodeUserExists         ErrorCode = "USER_EXISTS"
	CodeUserNonexistent    ErrorCode = "USER_NONEXISTENT"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeRateLimited        ErrorCode = "RATE_LIMITED"
	CodeDatabaseError      ErrorCode = "DATABASE_ERROR"
	CodeInternalErr        ErrorCode = "INTERNAL_ERR"
)

// Mensajes de exito expuestos por la API.
const (
	StatusRegisterSuccess = "User registered successfully!"
	StatusLoginSuccess    = "User logged in successfully!"
	StatusLogoutSuccess   = "User logged out successfully!"
)
