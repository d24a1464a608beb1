package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	v1 "github.com/pojntfx/torrent-cli/pkg/api/http/v1"
	"github.com/pojntfx/torrent-cli/pkg/config"
	"github.com/pojntfx/torrent-cli/pkg/errs"
	"github.com/rs/zerolog/log"
)

const (
	SessionHeader = "X-Transmission-Session-Id"

	rpcPath = "/transmission/rpc"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	errMissingSessionID = errors.New("daemon did not send a session id")

	queueFields = []string{"id", "name", "status", "percentDone", "rateDownload", "totalSize", "eta", "addedDate", "errorString"}
)

type AddedTorrent struct {
	ID         int64
	Name       string
	HashString string
	Duplicate  bool
}

type QueueEntry struct {
	ID                      int64     `json:"id" yaml:"id"`
	Name                    string    `json:"name" yaml:"name"`
	Status                  Status    `json:"status" yaml:"status"`
	ProgressPercent         float64   `json:"progressPercent" yaml:"progressPercent"`
	TotalSizeBytes          int64     `json:"totalSize" yaml:"totalSize"`
	DownloadRateBytesPerSec int64     `json:"rateDownload" yaml:"rateDownload"`
	ETA                     int64     `json:"eta" yaml:"eta"`
	AddedAt                 time.Time `json:"addedAt" yaml:"addedAt"`
	ErrorString             string    `json:"errorString,omitempty" yaml:"errorString,omitempty"`
}

// Manager talks to a running Transmission daemon. A Manager holds one RPC
// session; create a new one per invocation.
type Manager struct {
	url      string
	address  string
	username string
	password string
	ctx      context.Context

	hc        *http.Client
	sessionID string
}

func NewManager(
	settings config.Settings,
	ctx context.Context,
) *Manager {
	u := url.URL{
		Scheme: "http",
		Host:   settings.Address(),
		Path:   rpcPath,
	}

	return &Manager{
		url:      u.String(),
		address:  settings.Address(),
		username: settings.Username,
		password: settings.Password,
		ctx:      ctx,

		hc: &http.Client{},
	}
}

// Connect opens the RPC session and checks the credentials.
func (m *Manager) Connect() error {
	log.Debug().
		Str("url", m.url).
		Msg("Opening session")

	res, err := m.post(v1.Request{Method: v1.MethodSessionGet})
	if err != nil {
		return &errs.ConnectionError{Address: m.address, Reason: "daemon unreachable", Err: err}
	}
	defer res.Body.Close()

	if err := m.checkAuth(res); err != nil {
		return err
	}

	switch res.StatusCode {
	case http.StatusConflict, http.StatusOK:
		m.sessionID = res.Header.Get(SessionHeader)
		if m.sessionID == "" {
			return &errs.ConnectionError{Address: m.address, Reason: "handshake failed", Err: errMissingSessionID}
		}
	default:
		return &errs.ConnectionError{Address: m.address, Reason: "handshake failed", Err: errors.New(res.Status)}
	}

	session := v1.Session{}
	if err := m.call(v1.MethodSessionGet, nil, &session); err != nil {
		return err
	}

	log.Debug().
		Str("version", session.Version).
		Int("rpcVersion", session.RPCVersion).
		Msg("Connected")

	return nil
}

// AddTorrent hands a magnet link to the daemon.
func (m *Manager) AddTorrent(magnet string) (AddedTorrent, error) {
	log.Debug().
		Str("magnet", magnet).
		Msg("Adding torrent")

	added := v1.TorrentAdded{}
	if err := m.call(v1.MethodTorrentAdd, v1.TorrentAddArguments{Filename: magnet}, &added); err != nil {
		return AddedTorrent{}, err
	}

	switch {
	case added.TorrentAdded != nil:
		return AddedTorrent{
			ID:         added.TorrentAdded.ID,
			Name:       added.TorrentAdded.Name,
			HashString: added.TorrentAdded.HashString,
		}, nil
	case added.TorrentDuplicate != nil:
		return AddedTorrent{
			ID:         added.TorrentDuplicate.ID,
			Name:       added.TorrentDuplicate.Name,
			HashString: added.TorrentDuplicate.HashString,
			Duplicate:  true,
		}, nil
	default:
		return AddedTorrent{}, &errs.DaemonError{Method: v1.MethodTorrentAdd, Message: "unexpected torrent-add response"}
	}
}

// ListTorrents returns every torrent the daemon tracks.
func (m *Manager) ListTorrents() ([]QueueEntry, error) {
	torrents := v1.Torrents{}
	if err := m.call(v1.MethodTorrentGet, v1.TorrentGetArguments{Fields: queueFields}, &torrents); err != nil {
		return nil, err
	}

	entries := []QueueEntry{}
	for _, t := range torrents.Torrents {
		entry := QueueEntry{
			ID:                      t.ID,
			Name:                    t.Name,
			Status:                  Status(t.Status),
			ProgressPercent:         t.PercentDone * 100,
			TotalSizeBytes:          t.TotalSize,
			DownloadRateBytesPerSec: t.RateDownload,
			ETA:                     t.ETA,
			ErrorString:             t.ErrorString,
		}
		if t.AddedDate > 0 {
			entry.AddedAt = time.Unix(t.AddedDate, 0)
		}

		entries = append(entries, entry)
	}

	log.Debug().
		Int("count", len(entries)).
		Msg("Got torrents")

	return entries, nil
}

func (m *Manager) call(method string, arguments interface{}, out interface{}) error {
	req := v1.Request{
		Method:    method,
		Arguments: arguments,
	}

	res, err := m.post(req)
	if err != nil {
		return &errs.ConnectionError{Address: m.address, Reason: "daemon unreachable", Err: err}
	}
	defer res.Body.Close()

	// The session id rotates; the daemon answers 409 with the new one
	if res.StatusCode == http.StatusConflict {
		m.sessionID = res.Header.Get(SessionHeader)
		if m.sessionID == "" {
			return &errs.ConnectionError{Address: m.address, Reason: "handshake failed", Err: errMissingSessionID}
		}

		log.Debug().
			Str("method", method).
			Msg("Session id changed, resending")

		res.Body.Close()

		res, err = m.post(req)
		if err != nil {
			return &errs.ConnectionError{Address: m.address, Reason: "daemon unreachable", Err: err}
		}
		defer res.Body.Close()
	}

	if err := m.checkAuth(res); err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))

		msg := res.Status
		if b := strings.TrimSpace(string(body)); b != "" {
			msg = fmt.Sprintf("%s: %s", res.Status, b)
		}

		return &errs.DaemonError{Method: method, Message: msg}
	}

	rpcRes := v1.Response{}
	if err := json.NewDecoder(res.Body).Decode(&rpcRes); err != nil {
		return &errs.DaemonError{Method: method, Message: "malformed response", Err: err}
	}

	if rpcRes.Result != v1.ResultSuccess {
		return &errs.DaemonError{Method: method, Message: rpcRes.Result}
	}

	if out == nil || len(rpcRes.Arguments) == 0 {
		return nil
	}

	if err := json.Unmarshal(rpcRes.Arguments, out); err != nil {
		return &errs.DaemonError{Method: method, Message: "malformed response arguments", Err: err}
	}

	return nil
}

func (m *Manager) post(rpcReq v1.Request) (*http.Response, error) {
	body, err := json.Marshal(rpcReq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(m.ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if m.sessionID != "" {
		req.Header.Set(SessionHeader, m.sessionID)
	}
	if m.username != "" || m.password != "" {
		req.SetBasicAuth(m.username, m.password)
	}

	return m.hc.Do(req)
}

func (m *Manager) checkAuth(res *http.Response) error {
	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return &errs.ConnectionError{Address: m.address, Reason: "invalid credentials", Err: errors.New(res.Status)}
	}

	return nil
}
