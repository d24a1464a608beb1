package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pojntfx/torrent-cli/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	return NewStore(filepath.Join(t.TempDir(), "nested", "torrent-cli", "config.json"))
}

func ptr[T any](v T) *T {
	return &v
}

func TestLoadCreatesDefaults(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"host":"localhost","port":9091,"username":"transmission","password":"transmission"}`, string(data))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadReturnsFileVerbatim(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"host":"seedbox","port":9999,"username":"u","password":"p"}`), 0o600))

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Settings{Host: "seedbox", Port: 9999, Username: "u", Password: "p"}, settings)
}

func TestLoadMalformed(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"host":`), 0o600))

	_, err := store.Load()
	require.Error(t, err)

	var configErr *errs.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, store.Path(), configErr.Path)
	assert.Equal(t, "malformed settings", configErr.Reason)
}

func TestUpdateOnlySuppliedFields(t *testing.T) {
	tests := []struct {
		name    string
		partial Partial
		want    Settings
	}{
		{
			name:    "host only",
			partial: Partial{Host: ptr("x")},
			want:    Settings{Host: "x", Port: DefaultPort, Username: DefaultUsername, Password: DefaultPassword},
		},
		{
			name:    "port and password",
			partial: Partial{Port: ptr(9000), Password: ptr("secret")},
			want:    Settings{Host: DefaultHost, Port: 9000, Username: DefaultUsername, Password: "secret"},
		},
		{
			name:    "nothing",
			partial: Partial{},
			want:    Default(),
		},
		{
			name:    "empty string is still supplied",
			partial: Partial{Username: ptr("")},
			want:    Settings{Host: DefaultHost, Port: DefaultPort, Username: "", Password: DefaultPassword},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)

			updated, err := store.Update(tt.partial)
			require.NoError(t, err)
			assert.Equal(t, tt.want, updated)

			loaded, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, loaded)
		})
	}
}

func TestUpdateKeepsPreviousValues(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Update(Partial{Host: ptr("seedbox"), Port: ptr(9092)})
	require.NoError(t, err)

	before, err := store.Load()
	require.NoError(t, err)

	_, err = store.Update(Partial{Host: ptr("x")})
	require.NoError(t, err)

	after, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "x", after.Host)
	assert.Equal(t, before.Port, after.Port)
	assert.Equal(t, before.Username, after.Username)
	assert.Equal(t, before.Password, after.Password)
}

func TestUpdateRejectsInvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 65536} {
		store := newTestStore(t)

		_, err := store.Update(Partial{Port: ptr(port)})

		var configErr *errs.ConfigError
		require.ErrorAs(t, err, &configErr)

		_, statErr := os.Stat(store.Path())
		assert.True(t, os.IsNotExist(statErr), "settings must not be written for port %d", port)
	}
}

func TestAddress(t *testing.T) {
	assert.Equal(t, "localhost:9091", Default().Address())
	assert.Equal(t, "[::1]:9091", Settings{Host: "::1", Port: 9091}.Address())
}
