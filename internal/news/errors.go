package news

import "fmt"

// RateLimitError is returned on HTTP 429. Message is safe to show to
// the user as-is.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string { return e.Message }

// StatusError is returned for any other non-2xx response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("news service returned HTTP %d", e.Code)
}

// ConfigError means the client is not configured well enough to issue
// a request at all, e.g. the API token is missing or still the
// placeholder. No request is attempted.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }
