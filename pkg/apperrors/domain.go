package apperrors

import (
	"net/http"
)

// Factories and predefined values for domain errors. A NotFound is returned
// both when a record does not exist and when it exists outside the actor's
// visibility scope, so the two cases are indistinguishable to the caller.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrInvalidOperation builds a 400 for operations illegal in the current state.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUsernameTaken = New(
	CodeAlreadyExists,
	"auth",
	"Username is already taken",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email is already registered",
	http.StatusBadRequest,
)

// ErrInvalidUserRole rejects registration with a role outside
// {Client, Developer}; Admin is never self-selectable.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid role for registration",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Projects ---

var ErrOnlyClientsCreateProjects = New(
	CodeForbidden,
	"project",
	"Only Clients can create projects",
	http.StatusForbidden,
)

// --- Tasks ---

var ErrOnlyAdminCreatesTasks = New(
	CodeForbidden,
	"task",
	"Only Admin can create tasks",
	http.StatusForbidden,
)

// --- Applications ---

var ErrOnlyDevelopersApply = New(
	CodeForbidden,
	"application",
	"Only approved Developers can apply",
	http.StatusForbidden,
)

var ErrDuplicateApplication = New(
	CodeValidationFailed,
	"application",
	"You have already applied for this project",
	http.StatusBadRequest,
)

var ErrApplicationProcessed = New(
	CodeInvalidStatus,
	"application",
	"Application already processed",
	http.StatusBadRequest,
)
