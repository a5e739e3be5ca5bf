// Package domainerrors carries coded errors from services to transports.
//
// Services return *Error values; handlers translate the code into an HTTP status
// with ToHTTPStatus. Infrastructure layers return pkg/platform/sentinel errors
// instead and let services decide which code applies.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the stable, client-facing identifier of an error class.
type Code string

const (
	CodeBadRequest     Code = "bad_request"
	CodeInvalidInput   Code = "invalid_input"
	CodeMissingConsent Code = "missing_consent"
	CodeBadGateway     Code = "bad_gateway"
	CodeInternal       Code = "internal_error"
)

// Error is a coded error with a human readable message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error without a cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a coded error that keeps err in the chain.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Is reports whether any error in err's chain is a domain error with the given code.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// HasCode is an alias of Is kept for readability in tests.
func HasCode(err error, code Code) bool {
	return Is(err, code)
}

// CodeOf extracts the code of the first domain error in err's chain,
// defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeInvalidInput, CodeMissingConsent:
		return http.StatusBadRequest
	case CodeBadGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
