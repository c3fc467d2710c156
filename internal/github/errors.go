package github

import (
	"errors"
	"fmt"
)

// NetworkError is the only failure Search reports. It covers transport
// failures, non-2xx responses and bodies that do not decode.
type NetworkError struct {
	Query      string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("search %q: status %d: %v", e.Query, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("search %q: %v", e.Query, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsNetworkError reports whether err is, or wraps, a *NetworkError.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
