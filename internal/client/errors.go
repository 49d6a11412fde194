package client

import "fmt"

// APIError is a non-2xx reply from the admin API. Callers treat it as
// opaque; the server-side message is carried through for display.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("admin api: status %d", e.Status)
	}
	return fmt.Sprintf("admin api: status %d: %s", e.Status, e.Message)
}
