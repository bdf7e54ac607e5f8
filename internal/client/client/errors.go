package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// RequestError is a non-2xx API response.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Is lets callers match auth rejections with errors.Is(err, ErrUnauthorized).
func (e *RequestError) Is(target error) bool {
	if target == ErrUnauthorized {
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	}
	return false
}

func newRequestError(status int, serverMessage string) *RequestError {
	msg := serverMessage
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &RequestError{Status: status, Message: msg}
}
