package generation

import "fmt"

// ConfigError indicates the client is missing required configuration. It is
// raised before any network I/O.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("generation not configured: %s", e.Message)
}

// NotReadyError indicates the upstream model is still warming up. The request
// may be retried after the given number of seconds; the client itself never
// retries.
type NotReadyError struct {
	RetryAfter int
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("model is loading, retry after %d seconds", e.RetryAfter)
}

// StatusError indicates the upstream returned a non-success status other
// than the warm-up signal.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("generation request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("generation request failed with status %d: %s", e.StatusCode, e.Message)
}

// TransportError indicates the request never produced an upstream response.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("generation request failed: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
