package repository

import (
	"errors"
	"fmt"
)

// Kind classifies a failed call.
type Kind int

const (
	KindServerError Kind = iota
	KindNetworkUnreachable
	KindNotFound
	KindValidationRejected
)

func (k Kind) String() string {
	switch k {
	case KindNetworkUnreachable:
		return "network_unreachable"
	case KindNotFound:
		return "not_found"
	case KindValidationRejected:
		return "validation_rejected"
	default:
		return "server_error"
	}
}

var (
	ErrNetworkUnreachable = errors.New("listings service unreachable")
	ErrNotFound           = errors.New("resource not found")
	ErrValidationRejected = errors.New("rejected by server validation")
	ErrServerError        = errors.New("listings service error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindNetworkUnreachable:
		return ErrNetworkUnreachable
	case KindNotFound:
		return ErrNotFound
	case KindValidationRejected:
		return ErrValidationRejected
	default:
		return ErrServerError
	}
}

// APIError is the single error shape of the client. Message is what a user sees:
// the server-supplied text when there is one, otherwise a description of the status.
type APIError struct {
	Kind       Kind
	Message    string
	StatusCode int   // 0 for transport failures
	Err        error // underlying cause, if any
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

// NewAPIError builds an APIError.
func NewAPIError(kind Kind, statusCode int, message string, cause error) *APIError {
	return &APIError{Kind: kind, Message: message, StatusCode: statusCode, Err: cause}
}

// KindForStatus classifies a non-2xx HTTP status.
func KindForStatus(status int) Kind {
	switch {
	case status == 404:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindValidationRejected
	default:
		return KindServerError
	}
}

// StatusMessage is the generic message used when a response carries no error text.
func StatusMessage(status int) string {
	return fmt.Sprintf("HTTP error! status: %d", status)
}

// KindOf returns the Kind of err, or KindServerError for foreign errors.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindServerError
}

// IsNotFound reports whether err means the requested resource does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
