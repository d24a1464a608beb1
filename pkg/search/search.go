// Package search queries the apibay torrent index.
package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	v1 "github.com/pojntfx/torrent-cli/pkg/api/http/v1"
	"github.com/pojntfx/torrent-cli/pkg/errs"
	"github.com/rs/zerolog/log"
)

const (
	DefaultEndpoint = "https://apibay.org/q.php"
	MaxResults      = 10

	// apibay returns a single entry with this hash when nothing matched
	emptyInfoHash = "0000000000000000000000000000000000000000"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary
)

type Result struct {
	Name      string `json:"name" yaml:"name"`
	SizeBytes int64  `json:"size" yaml:"size"`
	Seeders   int    `json:"seeders" yaml:"seeders"`
	Leechers  int    `json:"leechers" yaml:"leechers"`
	InfoHash  string `json:"infoHash" yaml:"infoHash"`
}

type Client struct {
	endpoint string
	hc       *http.Client
}

func NewClient(endpoint string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{}
	}

	return &Client{
		endpoint: endpoint,
		hc:       hc,
	}
}

// Search returns at most MaxResults entries for query in the order the index
// ranked them.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &errs.NetworkError{Operation: "search", Err: err}
	}

	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	log.Debug().
		Str("url", u.String()).
		Msg("Searching")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, &errs.NetworkError{Operation: "search", Err: err}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, &errs.NetworkError{Operation: "search", Err: err}
	}
	if res.Body != nil {
		defer res.Body.Close()
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &errs.NetworkError{Operation: "search", StatusCode: res.StatusCode, Err: errors.New(res.Status)}
	}

	raw := []v1.SearchResult{}
	dec := json.NewDecoder(res.Body)
	if err := dec.Decode(&raw); err != nil {
		return nil, &errs.NetworkError{Operation: "decode", Err: err}
	}

	results := []Result{}
	for i, r := range raw {
		if len(results) >= MaxResults {
			break
		}

		if r.InfoHash == emptyInfoHash {
			continue
		}

		result, err := convert(r)
		if err != nil {
			return nil, &errs.NetworkError{Operation: "decode", Err: fmt.Errorf("result %d: %w", i, err)}
		}

		results = append(results, result)
	}

	log.Debug().
		Int("received", len(raw)).
		Int("kept", len(results)).
		Msg("Got search results")

	return results, nil
}

func convert(r v1.SearchResult) (Result, error) {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.InfoHash) == "" {
		missing = append(missing, "info_hash")
	}
	if !r.Size.Valid {
		missing = append(missing, "size")
	}
	if !r.Seeders.Valid {
		missing = append(missing, "seeders")
	}
	if !r.Leechers.Valid {
		missing = append(missing, "leechers")
	}

	if len(missing) > 0 {
		return Result{}, fmt.Errorf("missing fields %s", strings.Join(missing, ", "))
	}

	return Result{
		Name:      r.Name,
		SizeBytes: r.Size.Value,
		Seeders:   int(r.Seeders.Value),
		Leechers:  int(r.Leechers.Value),
		InfoHash:  r.InfoHash,
	}, nil
}
