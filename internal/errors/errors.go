package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services return these without knowing anything about HTTP; the API layer
// checks them with `errors.Is()` and maps them to status codes in one place.

var (
	// ErrInvalidInput signifies that client input failed validation, e.g. an
	// empty or whitespace-only chat message.
	// Mapped to a 400 Bad Request HTTP status.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnconfigured signifies that no upstream API credential is configured,
	// so the model capability is unavailable. This is deliberately distinct
	// from ErrInvalidInput and must never be silently degraded.
	// Mapped to a 503 Service Unavailable HTTP status.
	ErrUnconfigured = errors.New("upstream API not configured")

	// ErrNotFound signifies that a requested conversation could not be located.
	// Mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrUpstream signifies that the model API call itself failed, including
	// safety-block refusals. The upstream error text is carried in the wrap
	// and surfaced to the caller; there is no retry.
	// Mapped to a 500 Internal Server Error HTTP status.
	ErrUpstream = errors.New("upstream model error")

	// ErrInternal signifies an unexpected server-side error.
	// Mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
