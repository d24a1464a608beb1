package errs

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *NetworkError
		want string
	}{
		{
			name: "with HTTP status code",
			err:  &NetworkError{Operation: "search", StatusCode: 503, Err: errors.New("503 Service Unavailable")},
			want: "network error during search (HTTP 503): 503 Service Unavailable",
		},
		{
			name: "without HTTP status code",
			err:  &NetworkError{Operation: "search", Err: errors.New("dial tcp: i/o timeout")},
			want: "network error during search: dial tcp: i/o timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestConnectionError_Error(t *testing.T) {
	withCause := &ConnectionError{Address: "localhost:9091", Reason: "unreachable", Err: io.EOF}
	assert.Equal(t, "could not connect to localhost:9091: unreachable: EOF", withCause.Error())

	bare := &ConnectionError{Address: "localhost:9091", Reason: "invalid credentials"}
	assert.Equal(t, "could not connect to localhost:9091: invalid credentials", bare.Error())
}

func TestDaemonError_Error(t *testing.T) {
	err := &DaemonError{Method: "torrent-add", Message: "invalid or corrupt torrent file"}
	assert.Equal(t, "torrent-add failed: invalid or corrupt torrent file", err.Error())
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Path: "/tmp/config.json", Reason: "invalid port 0"}
	assert.Equal(t, "config /tmp/config.json: invalid port 0", err.Error())
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("root cause")

	tests := []struct {
		name   string
		err    error
		target any
	}{
		{"network", &NetworkError{Operation: "search", Err: cause}, new(*NetworkError)},
		{"connection", &ConnectionError{Address: "a:1", Reason: "r", Err: cause}, new(*ConnectionError)},
		{"daemon", &DaemonError{Method: "torrent-get", Message: "m", Err: cause}, new(*DaemonError)},
		{"config", &ConfigError{Path: "p", Reason: "r", Err: cause}, new(*ConfigError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)

			require.ErrorIs(t, wrapped, cause)
			require.ErrorAs(t, wrapped, tt.target)
		})
	}
}
