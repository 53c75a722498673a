package openf1

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidPayload = errors.New("invalid payload")

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}
