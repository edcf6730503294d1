package client

import (
	"fmt"
)

// NetworkError is a transport failure or a response without a usable
// envelope. Requests are never retried.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected response [%d]: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerRejection is a well-formed envelope with success=false. Message is
// the server's text, unmodified.
type ServerRejection struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]string
}

func (e *ServerRejection) Error() string {
	return e.Message
}
