package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes shared by the gateway, the mutation layer and the view handlers.
const (
	CodeNetwork         = "NetworkError"
	CodeHTTP            = "HTTPError"
	CodeDecode          = "DecodeError"
	CodeValidation      = "ValidationError"
	CodeInvalidRequest  = "InvalidRequest"
	CodeNotFound        = "ResourceNotFound"
	CodeInternal        = "InternalError"
	CodeUnavailable     = "ServiceUnavailable"
	CodeArtifactFailure = "ArtifactError"
)

// StandardError represents a standardized error response
type StandardError struct {
	Code    string `json:"error"`   // Error code/type (e.g., "NetworkError", "ValidationError")
	Message string `json:"message"` // Human-readable error message
	Details string `json:"details"` // Additional details (field name, upstream status, etc.)

	// Status is the upstream HTTP status for HTTPError values
	Status int `json:"-"`
}

// Error implements the error interface
func (e *StandardError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidRequest, CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeHTTP:
		if e.Status >= 400 && e.Status < 600 {
			return e.Status
		}
		return http.StatusBadGateway
	case CodeDecode:
		return http.StatusBadGateway
	case CodeNetwork, CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeInternal, CodeArtifactFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewStandardError creates a new StandardError
func NewStandardError(errorCode, message, details string) *StandardError {
	return &StandardError{
		Code:    errorCode,
		Message: message,
		Details: details,
	}
}

// As unwraps err into a *StandardError when it carries one.
func As(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// Common error constructors
func NewInvalidRequest(message, details string) *StandardError {
	return NewStandardError(CodeInvalidRequest, message, details)
}

func NewValidationError(message, field string) *StandardError {
	return NewStandardError(CodeValidation, message, fmt.Sprintf("Field: %s", field))
}

func NewNotFound(resource, key string) *StandardError {
	return NewStandardError(CodeNotFound, fmt.Sprintf("%s not found", resource), key)
}

func NewNetworkError(err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return NewStandardError(CodeNetwork, "network error occurred", details)
}

func NewHTTPError(status int, message string) *StandardError {
	if message == "" {
		message = fmt.Sprintf("HTTP error: status %d", status)
	}
	stdErr := NewStandardError(CodeHTTP, message, fmt.Sprintf("Status: %d", status))
	stdErr.Status = status
	return stdErr
}

func NewDecodeError(err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return NewStandardError(CodeDecode, "failed to decode response", details)
}

func NewArtifactError(name string, err error) *StandardError {
	return NewStandardError(CodeArtifactFailure, fmt.Sprintf("failed to save %s", name), err.Error())
}

func NewInternalError(message string, err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return NewStandardError(CodeInternal, message, details)
}
