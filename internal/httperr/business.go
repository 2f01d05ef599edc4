package httperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindMissingField
	KindNotFound
	KindAlreadyExists
	KindCredentialMismatch
	KindMissingToken
	KindInvalidToken
	KindInvalidDateRange
	KindForbidden
	KindTooManyAttempts
)

var kindCodes = map[Kind]string{
	KindInternal:           "internal_error",
	KindMissingField:       "missing_field",
	KindNotFound:           "not_found",
	KindAlreadyExists:      "already_exists",
	KindCredentialMismatch: "credential_mismatch",
	KindMissingToken:       "missing_token",
	KindInvalidToken:       "invalid_token",
	KindInvalidDateRange:   "invalid_date_range",
	KindForbidden:          "forbidden",
	KindTooManyAttempts:    "too_many_attempts",
}

func (k Kind) String() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return kindCodes[KindInternal]
}

// Status maps a kind to its transport status code.
func (k Kind) Status() int {
	switch k {
	case KindMissingField, KindInvalidDateRange:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExists:
		return http.StatusConflict
	case KindCredentialMismatch, KindMissingToken, KindInvalidToken:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindTooManyAttempts:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error is the typed failure raised by business logic. Only the boundary
// handler turns it into a response.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func MissingField(message string) error       { return newError(KindMissingField, message) }
func NotFound(message string) error           { return newError(KindNotFound, message) }
func AlreadyExists(message string) error      { return newError(KindAlreadyExists, message) }
func CredentialMismatch(message string) error { return newError(KindCredentialMismatch, message) }
func InvalidDateRange(message string) error   { return newError(KindInvalidDateRange, message) }
func Forbidden(message string) error          { return newError(KindForbidden, message) }

func MissingToken() error {
	return newError(KindMissingToken, "Token don't match.")
}

func InvalidToken() error {
	return newError(KindInvalidToken, "Invalid token.")
}

func TooManyAttempts() error {
	return newError(KindTooManyAttempts, "Too many login attempts, try again later.")
}

// Internal wraps an unexpected failure. The cause is kept for logging only.
func Internal(err error) error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// KindOf reports the kind carried by err, KindInternal for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// From normalizes any error into a typed one. Untyped errors become Internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if IsUniqueViolation(err) {
		return &Error{Kind: KindAlreadyExists, Message: "Resource already exists.", Err: err}
	}
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}
