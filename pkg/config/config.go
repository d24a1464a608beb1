// Package config persists the Transmission connection settings as a JSON file
// under the user's configuration directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/renameio/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pojntfx/torrent-cli/pkg/errs"
	"github.com/rs/zerolog/log"
)

const (
	DefaultHost     = "localhost"
	DefaultPort     = 9091
	DefaultUsername = "transmission"
	DefaultPassword = "transmission"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary
)

type Settings struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// Partial holds the fields of an update. Nil fields are left untouched.
type Partial struct {
	Host     *string
	Port     *int
	Username *string
	Password *string
}

func Default() Settings {
	return Settings{
		Host:     DefaultHost,
		Port:     DefaultPort,
		Username: DefaultUsername,
		Password: DefaultPassword,
	}
}

func (s Settings) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DefaultPath returns ~/.config/torrent-cli/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "torrent-cli", "config.json"), nil
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file, creating it with the defaults if it does not
// exist yet.
func (s *Store) Load() (Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, &errs.ConfigError{Path: s.path, Reason: "could not read settings", Err: err}
		}

		log.Debug().
			Str("path", s.path).
			Msg("Creating default settings")

		settings := Default()
		if err := s.write(settings); err != nil {
			return Settings{}, err
		}

		return settings, nil
	}

	settings := Settings{}
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, &errs.ConfigError{Path: s.path, Reason: "malformed settings", Err: err}
	}

	log.Debug().
		Str("path", s.path).
		Str("host", settings.Host).
		Int("port", settings.Port).
		Msg("Loaded settings")

	return settings, nil
}

// Update applies the supplied fields on top of the stored settings and writes
// the result back.
func (s *Store) Update(p Partial) (Settings, error) {
	if p.Port != nil && (*p.Port < 1 || *p.Port > 65535) {
		return Settings{}, &errs.ConfigError{Path: s.path, Reason: fmt.Sprintf("invalid port %d", *p.Port)}
	}

	settings, err := s.Load()
	if err != nil {
		return Settings{}, err
	}

	if p.Host != nil {
		settings.Host = *p.Host
	}

	if p.Port != nil {
		settings.Port = *p.Port
	}

	if p.Username != nil {
		settings.Username = *p.Username
	}

	if p.Password != nil {
		settings.Password = *p.Password
	}

	if err := s.write(settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func (s *Store) write(settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &errs.ConfigError{Path: s.path, Reason: "could not create settings directory", Err: err}
	}

	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return &errs.ConfigError{Path: s.path, Reason: "could not encode settings", Err: err}
	}

	// Holds the daemon password
	if err := renameio.WriteFile(s.path, append(data, '\n'), 0o600); err != nil {
		return &errs.ConfigError{Path: s.path, Reason: "could not write settings", Err: err}
	}

	return nil
}
