// Package api wraps the miorai backend's HTTP interface in typed calls.
// File: api/errors.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrorKind classifies a failed backend call so callers never have to poke
// at raw status codes or response bodies.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindUnauthorized ErrorKind = "unauthorized"
	KindNotFound     ErrorKind = "not_found"
	KindRateLimited  ErrorKind = "rate_limited"
	KindServer       ErrorKind = "server"
)

// DefaultRetryAfter applies when a rate-limit response carries no
// Retry-After header.
const DefaultRetryAfter = time.Second

// Error is a failed backend call. Message carries the server's own error
// text verbatim when the payload had one.
type Error struct {
	Kind       ErrorKind
	Status     int
	Message    string
	RetryAfter time.Duration // set only for rate-limited responses
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("backend %s (%d)", e.Kind, e.Status)
}

// IsNotFound reports whether err is a backend 404-class failure.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

// IsUnauthorized reports whether err means the stored token is no longer
// accepted and the local session must be torn down.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindUnauthorized
}

// IsRateLimited reports whether err is a throttling response.
func IsRateLimited(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindRateLimited
}

// Message extracts the server-provided message from err, or returns the
// given fallback when there is none.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindServer
	}
}

// decodeError turns a non-2xx response into an *Error, pulling the message
// out of the backend's usual payload shapes: {"error": "..."} on tournament
// endpoints, {"detail": "..."} on auth endpoints, and field-keyed string
// lists from serializer validation, e.g. {"email": ["taken"]}.
func decodeError(status int, header http.Header, body []byte) *Error {
	apiErr := &Error{Kind: kindForStatus(status), Status: status}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = firstMessage(payload)
	}

	if apiErr.Kind == KindRateLimited {
		apiErr.RetryAfter = retryAfter(header)
	}
	return apiErr
}

func firstMessage(payload map[string]json.RawMessage) string {
	for _, key := range []string{"error", "detail"} {
		if raw, ok := payload[key]; ok {
			var msg string
			if json.Unmarshal(raw, &msg) == nil && msg != "" {
				return msg
			}
		}
	}
	// field-keyed validation lists: report the first message found
	for _, raw := range payload {
		var list []string
		if json.Unmarshal(raw, &list) == nil && len(list) > 0 && list[0] != "" {
			return list[0]
		}
	}
	return ""
}

func retryAfter(header http.Header) time.Duration {
	raw := header.Get("Retry-After")
	if raw == "" {
		return DefaultRetryAfter
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs < 0 {
		return DefaultRetryAfter
	}
	return time.Duration(secs) * time.Second
}
