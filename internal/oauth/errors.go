package oauth

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// ErrStopped is returned by Serve when the server was stopped before any
// callback arrived and the context was not cancelled.
var ErrStopped = errors.New("callback server stopped before receiving a callback")

// ExchangeError reports that the provider did not hand out tokens for the
// received authorization code.
type ExchangeError struct {
	Err error
}

// Error implements the error interface.
func (e *ExchangeError) Error() string {
	return "token exchange failed: " + e.Err.Error()
}

// Unwrap returns the underlying exchange error.
func (e *ExchangeError) Unwrap() error {
	return e.Err
}

// PersistError reports that tokens were obtained but could not be written.
type PersistError struct {
	Err error
}

// Error implements the error interface.
func (e *PersistError) Error() string {
	return "failed to persist credentials: " + e.Err.Error()
}

// Unwrap returns the underlying write error.
func (e *PersistError) Unwrap() error {
	return e.Err
}

// errorPayload renders err as {"error":"<message>"}. The message is always
// err.Error(), whatever the concrete error type.
func errorPayload(err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if encErr := enc.Encode(struct {
		Error string `json:"error"`
	}{Error: msg}); encErr != nil {
		return `{"error":"unknown error"}`
	}
	return strings.TrimRight(buf.String(), "\n")
}
