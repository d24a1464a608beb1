package errs

import "fmt"

// NetworkError is a failed request against the search endpoint: transport
// failures, non-success statuses and undecodable bodies.
type NetworkError struct {
	Operation  string
	StatusCode int // 0 for non-HTTP failures
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("network error during %s (HTTP %d): %v", e.Operation, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ConnectionError means the daemon could not be reached or refused the
// credentials.
type ConnectionError struct {
	Address string
	Reason  string
	Err     error
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not connect to %s: %s: %v", e.Address, e.Reason, e.Err)
	}

	return fmt.Sprintf("could not connect to %s: %s", e.Address, e.Reason)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// DaemonError is an RPC-level rejection. Message is whatever the daemon said.
type DaemonError struct {
	Method  string
	Message string
	Err     error
}

func (e *DaemonError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Method, e.Message)
}

func (e *DaemonError) Unwrap() error {
	return e.Err
}

// ConfigError covers unreadable, malformed or unwritable settings files and
// invalid setting values.
type ConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config %s: %s: %v", e.Path, e.Reason, e.Err)
	}

	return fmt.Sprintf("config %s: %s", e.Path, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
