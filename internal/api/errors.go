package api

import "errors"

// Error is a non-2xx backend response. Detail is the backend's user-facing
// message when the body carried one, a generic transport message otherwise.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	return e.Detail
}

// IsAuthError reports whether err is a 401/403 from the backend. Callers use
// it to fall back to an unauthenticated state instead of failing hard.
func IsAuthError(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}
