package v1

import (
	"bytes"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// SearchResult is one entry of the search endpoint's JSON array.
type SearchResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	InfoHash string `json:"info_hash"`
	Leechers Number `json:"leechers"`
	Seeders  Number `json:"seeders"`
	NumFiles Number `json:"num_files"`
	Size     Number `json:"size"`
	Added    Number `json:"added"`
}

// Number is an integer that may be encoded either as a JSON number or as a
// string holding one. Valid is false if the field was absent or null.
type Number struct {
	Value int64
	Valid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = Number{}

		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := jsoniter.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("could not parse %q as an integer: %w", raw, err)
	}

	*n = Number{Value: v, Valid: true}

	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}

	return []byte(strconv.Quote(strconv.FormatInt(n.Value, 10))), nil
}
