// Package errors defines the domain error model shared by all layers.
// A DomainError carries a category, a machine-readable code, and a
// details map so HTTP handlers can translate failures without string
// matching.
package errors

import (
	"errors"
	"fmt"
)

// DomainErrorType represents the category of domain error.
type DomainErrorType string

const (
	// DomainValidationError indicates input validation failure.
	DomainValidationError DomainErrorType = "VALIDATION_ERROR"

	// DomainBusinessRuleError indicates a business rule violation.
	DomainBusinessRuleError DomainErrorType = "BUSINESS_RULE_ERROR"

	// DomainNotFoundError indicates a resource was not found.
	DomainNotFoundError DomainErrorType = "NOT_FOUND"

	// DomainConflictError indicates a conflict with existing state.
	DomainConflictError DomainErrorType = "CONFLICT"

	// DomainAuthorizationError indicates insufficient permissions.
	DomainAuthorizationError DomainErrorType = "AUTHORIZATION_ERROR"

	// DomainAuthenticationError indicates authentication failure.
	DomainAuthenticationError DomainErrorType = "AUTHENTICATION_ERROR"

	// DomainInfrastructureError indicates an infrastructure-level failure.
	DomainInfrastructureError DomainErrorType = "INFRASTRUCTURE_ERROR"
)

// DomainError represents a domain-specific error with rich context.
type DomainError struct {
	Type       DomainErrorType        `json:"type"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	StatusCode int                    `json:"status_code"`
}

// NewDomainError creates a new domain error.
func NewDomainError(errorType DomainErrorType, code string, message string) *DomainError {
	return &DomainError{
		Type:       errorType,
		Code:       code,
		Message:    message,
		Details:    make(map[string]interface{}),
		StatusCode: domainErrorTypeToStatusCode(errorType),
	}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

// WithCause adds a cause to the error.
func (e *DomainError) WithCause(cause error) *DomainError {
	c := e.clone()
	c.Cause = cause
	return c
}

// WithDetail adds a detail to the error.
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	c := e.clone()
	c.Details[key] = value
	return c
}

// clone copies the error so that decorating a predefined error does
// not mutate the shared value.
func (e *DomainError) clone() *DomainError {
	details := make(map[string]interface{}, len(e.Details))
	for k, v := range e.Details {
		details[k] = v
	}
	return &DomainError{
		Type:       e.Type,
		Code:       e.Code,
		Message:    e.Message,
		Details:    details,
		Cause:      e.Cause,
		StatusCode: e.StatusCode,
	}
}

// Is matches on type and code so predefined errors work with errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

// Unwrap returns the underlying cause.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// GetDomainError extracts a DomainError from an error chain.
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// IsType checks if an error is of a specific domain error type.
func IsType(err error, errType DomainErrorType) bool {
	domainErr := GetDomainError(err)
	return domainErr != nil && domainErr.Type == errType
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return IsType(err, DomainNotFoundError)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return IsType(err, DomainValidationError)
}

// domainErrorTypeToStatusCode maps error types to HTTP status codes.
func domainErrorTypeToStatusCode(errorType DomainErrorType) int {
	switch errorType {
	case DomainValidationError:
		return 400
	case DomainBusinessRuleError:
		return 422
	case DomainNotFoundError:
		return 404
	case DomainConflictError:
		return 409
	case DomainAuthenticationError:
		return 401
	case DomainAuthorizationError:
		return 403
	default:
		return 500
	}
}

// Predefined domain errors.

var (
	ErrPlaybookNotFound = NewDomainError(
		DomainNotFoundError,
		"PLAYBOOK_NOT_FOUND",
		"The requested playbook does not exist",
	)

	ErrPlaybookNameRequired = NewDomainError(
		DomainValidationError,
		"PLAYBOOK_NAME_REQUIRED",
		"Playbook name is required",
	)

	// ErrGraphNotExecutable rejects persistence of a graph whose
	// validation report contains error-severity issues. Handlers
	// attach the full issue list under the "issues" detail key.
	ErrGraphNotExecutable = NewDomainError(
		DomainBusinessRuleError,
		"GRAPH_NOT_EXECUTABLE",
		"Playbook graph failed structural validation",
	)

	ErrPlaybookAccessDenied = NewDomainError(
		DomainAuthorizationError,
		"PLAYBOOK_ACCESS_DENIED",
		"User is not authorized to access this playbook",
	)

	ErrRepositoryUnavailable = NewDomainError(
		DomainInfrastructureError,
		"REPOSITORY_UNAVAILABLE",
		"Playbook storage is unavailable",
	)
)
