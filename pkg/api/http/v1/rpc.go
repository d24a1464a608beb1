package v1

import jsoniter "github.com/json-iterator/go"

const (
	MethodSessionGet = "session-get"
	MethodTorrentAdd = "torrent-add"
	MethodTorrentGet = "torrent-get"

	ResultSuccess = "success"
)

type Request struct {
	Method    string      `json:"method"`
	Arguments interface{} `json:"arguments,omitempty"`
	Tag       int         `json:"tag,omitempty"`
}

type Response struct {
	Result    string              `json:"result"`
	Arguments jsoniter.RawMessage `json:"arguments,omitempty"`
	Tag       int                 `json:"tag,omitempty"`
}

type Session struct {
	Version    string `json:"version"`
	RPCVersion int    `json:"rpc-version"`
}

type TorrentAddArguments struct {
	Filename string `json:"filename"`
}

type TorrentAdded struct {
	TorrentAdded     *AddedTorrent `json:"torrent-added,omitempty"`
	TorrentDuplicate *AddedTorrent `json:"torrent-duplicate,omitempty"`
}

type AddedTorrent struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	HashString string `json:"hashString"`
}

type TorrentGetArguments struct {
	Fields []string `json:"fields"`
}

type Torrents struct {
	Torrents []Torrent `json:"torrents"`
}

type Torrent struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Status       int     `json:"status"`
	PercentDone  float64 `json:"percentDone"`
	RateDownload int64   `json:"rateDownload"`
	TotalSize    int64   `json:"totalSize"`
	ETA          int64   `json:"eta"`
	AddedDate    int64   `json:"addedDate"`
	ErrorString  string  `json:"errorString"`
}
