package neighborhoods

import (
	"fmt"
	"strings"
)

// RequestError is returned when the service answers with a status other than 200.
type RequestError struct {
	Code    int
	URL     string
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("neighborhoods request to %s failed with status %d: %s", e.URL, e.Code, snippet(e.Message))
}

// ExecutionError wraps transport, encoding and decoding failures with the URL
// that was being called.
type ExecutionError struct {
	URL string
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("an error occurred while calling %s: %v", e.URL, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

func snippet(body string) string {
	const maxLen = 512
	s := strings.TrimSpace(body)
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
