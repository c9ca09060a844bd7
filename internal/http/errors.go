package http

import "fmt"

// ServerStatusError reports a response with a 5xx status. The raw body is
// preserved so callers can recover the API's structured error payload.
type ServerStatusError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *ServerStatusError) Error() string {
	return fmt.Sprintf("server responded with status %d", e.StatusCode)
}

// StatusError reports a non-2xx response outside the 5xx class.
type StatusError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status %d", e.StatusCode)
}
