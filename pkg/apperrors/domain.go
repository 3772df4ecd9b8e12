package apperrors

import "net/http"

// Predefined domain errors and factories shared across services.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrCannotModifySelf = New(
	CodeForbidden,
	"admin",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

// --- Jobs ---

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrJobNotActive = New(
	CodeNotFound,
	"job",
	"Job not found or no longer accepting applications",
	http.StatusNotFound,
)

var ErrDeadlinePassed = New(
	CodeConflict,
	"job",
	"Application deadline has passed",
	http.StatusBadRequest,
)

// --- Applications ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"You have already applied to this job",
	http.StatusBadRequest,
)

// Withdrawal is permitted only while the application is still pending.
var ErrApplicationNotPending = New(
	CodeConflict,
	"application",
	"Only pending applications can be withdrawn",
	http.StatusBadRequest,
)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// --- Rate limiting ---

var ErrTooManyRequests = New(
	CodeRateLimited,
	"auth",
	"Too many requests, please try again later",
	http.StatusTooManyRequests,
)
