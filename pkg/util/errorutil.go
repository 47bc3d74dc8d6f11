package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	MessageKey string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewUpstreamError wraps a failed backend or identity-provider call.
func NewUpstreamError(service string, status int, err error) error {
	return &DomainError{
		Code:       "UPSTREAM_ERROR",
		Message:    fmt.Sprintf("%s request failed", service),
		HTTPStatus: http.StatusBadGateway,
		Details:    map[string]any{"service": service, "upstream_status": status},
		Err:        err,
	}
}

// Authentication error codes. MessageKey is resolved against the i18n
// catalog so the surfaced message follows the caller's language.
const (
	CodeInvalidCredential = "INVALID_CREDENTIAL"
	CodeEmailInUse        = "EMAIL_IN_USE"
	CodeWeakPassword      = "WEAK_PASSWORD"
	CodeUserNotFound      = "USER_NOT_FOUND"
)

// NewAuthError builds the user-facing error for an authentication failure.
func NewAuthError(code string) error {
	return &DomainError{
		Code:       code,
		Message:    authMessage(code),
		MessageKey: "auth." + code,
		HTTPStatus: authStatus(code),
	}
}

func authMessage(code string) string {
	switch code {
	case CodeInvalidCredential:
		return "invalid email or password"
	case CodeEmailInUse:
		return "email already in use"
	case CodeWeakPassword:
		return "password too weak"
	case CodeUserNotFound:
		return "user not found"
	}
	return "authentication failed"
}

func authStatus(code string) int {
	switch code {
	case CodeEmailInUse:
		return http.StatusConflict
	case CodeWeakPassword:
		return http.StatusBadRequest
	case CodeUserNotFound:
		return http.StatusNotFound
	}
	return http.StatusUnauthorized
}

// IsAuthCode reports whether err is a DomainError carrying the given code.
func IsAuthCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
