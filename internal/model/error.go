// internal/model/error.go
package model

import "errors"

// Application-level sentinel errors. Handlers map these to HTTP status codes
// in webutil.MapErrorToStatusCode.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrLocked         = errors.New("record is locked")
	ErrConflict       = errors.New("resource conflict")
	ErrPersistence    = errors.New("persistence failure")
	ErrAdvisor        = errors.New("advisor failure")
	ErrInternalServer = errors.New("internal server error")
)

// ErrorDetail is the error payload returned to the client.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse is the envelope for error responses.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError carries a client-facing detail plus the wrapped sentinel error
// used for status-code mapping.
type AppError struct {
	Detail ErrorDetail
	err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		err:    err,
	}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return e.Detail.Message + ": " + e.err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.err
}
