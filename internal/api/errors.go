package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired short-circuits normal control flow when the transparent
// refresh round trip fails: local tokens are already cleared and the session
// expiry hook has fired by the time a caller sees this.
var ErrSessionExpired = errors.New("session expired")

// Error is the normalized shape of any non-success backend response. Callers
// branch on Status instead of inspecting transport details. When the response
// body cannot be parsed, Message stays empty rather than being replaced with
// placeholder text; Error() then falls back to the status code.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

func statusIs(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsConflict reports a 409, which the backend uses for duplicate
// registration.
func IsConflict(err error) bool { return statusIs(err, http.StatusConflict) }

func IsNotFound(err error) bool { return statusIs(err, http.StatusNotFound) }

func IsUnauthorized(err error) bool { return statusIs(err, http.StatusUnauthorized) }
