package calendar

import "errors"

var (
	// ErrTransport covers network failures, timeouts and non-200 responses
	ErrTransport = errors.New("transport error")

	// ErrMalformedResponse is returned when a body is not JSON or does not
	// match the provider schema
	ErrMalformedResponse = errors.New("malformed response")

	// ErrYearUnavailable is returned when a provider answers but does not
	// publish the requested year
	ErrYearUnavailable = errors.New("year unavailable")

	// ErrCorruptEntry is returned by the store for an unreadable cache entry
	ErrCorruptEntry = errors.New("corrupt cache entry")
)
