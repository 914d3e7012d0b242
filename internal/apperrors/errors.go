package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrStorage indicates that the persistence layer failed to read or write.
var ErrStorage = errors.New("storage error")

// ErrNetwork indicates that a remote endpoint (rate provider or backend) could not be reached
// or answered with an unexpected status.
var ErrNetwork = errors.New("network error")

// ErrUpstreamData indicates that a remote endpoint answered but the payload was unusable,
// e.g. the requested currency is absent from the rate table.
var ErrUpstreamData = errors.New("upstream data error")

// AppError carries an HTTP-ish status code and a message alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel that corresponds to the error's code so callers can keep using
// errors.Is(err, apperrors.ErrStorage) and friends.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Code == http.StatusBadRequest
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrStorage:
		return e.Code == http.StatusInternalServerError
	case ErrNetwork:
		return e.Code == http.StatusBadGateway
	case ErrUpstreamData:
		return e.Code == http.StatusUnprocessableEntity
	}
	return false
}

// NewAppError creates an AppError with the given code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates a 400 error.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

// NewNotFoundError creates a 404 error.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, nil)
}

// NewStorageError creates a 500 error for a failed store operation.
func NewStorageError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

// NewNetworkError creates a 502 error for an unreachable or misbehaving remote.
func NewNetworkError(message string, err error) *AppError {
	return NewAppError(http.StatusBadGateway, message, err)
}

// NewUpstreamDataError creates a 422 error for an unusable remote payload.
func NewUpstreamDataError(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, nil)
}
