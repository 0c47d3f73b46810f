package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ErrUnauthorized is returned when the server rejects the configured password.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound is returned when the addressed resource does not exist.
var ErrNotFound = errors.New("not found")

// statusToError maps an HTTP response to a sentinel or descriptive error.
func statusToError(resp *resty.Response) error {
	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode() == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode() == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("server returned %s: %s", resp.Status(), resp.String())
	}
}
