package magnet

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/anacrolix/torrent/metainfo"
)

// New builds a magnet URI for a BitTorrent v1 info hash. The hash is passed
// through as given once it is known to be 40 hex digits.
func New(infoHash, name string) (string, error) {
	infoHash = strings.TrimSpace(infoHash)

	var h metainfo.Hash
	if err := h.FromHexString(infoHash); err != nil {
		return "", fmt.Errorf("invalid info hash %q: %w", infoHash, err)
	}

	return "magnet:?xt=urn:btih:" + infoHash + "&dn=" + url.QueryEscape(name), nil
}
