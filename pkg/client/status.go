package client

import "fmt"

// Status mirrors Transmission's torrent status codes.
type Status int

const (
	StatusStopped Status = iota
	StatusCheckPending
	StatusChecking
	StatusDownloadPending
	StatusDownloading
	StatusSeedPending
	StatusSeeding
)

var statusNames = map[Status]string{
	StatusStopped:         "stopped",
	StatusCheckPending:    "check pending",
	StatusChecking:        "checking",
	StatusDownloadPending: "download pending",
	StatusDownloading:     "downloading",
	StatusSeedPending:     "seed pending",
	StatusSeeding:         "seeding",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("unknown (%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
