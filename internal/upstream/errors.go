package upstream

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the upstream rejected the bearer token. Callers
	// must treat this as a forced logout: the session holding the token is
	// no longer usable.
	ErrUnauthorized = errors.New("upstream rejected the credential token")

	// ErrUnavailable covers transport failures and upstream 5xx responses.
	ErrUnavailable = errors.New("upstream service unavailable")
)

// APIError is a non-authorization 4xx from the upstream with its message
// preserved so handlers can surface it verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps an APIError if err carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
