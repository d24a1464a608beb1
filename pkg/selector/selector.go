// Package selector lets the user pick one search result from a terminal list.
package selector

import (
	"fmt"
	"io"

	"github.com/pojntfx/torrent-cli/pkg/format"
	"github.com/pojntfx/torrent-cli/pkg/search"
)

const title = "Select a torrent to download"

// Prompt asks the user to pick one of choices. ok is false if the user
// cancelled.
type Prompt func(title string, choices []string) (index int, ok bool, err error)

type Selector struct {
	prompt Prompt
	out    io.Writer
}

func New(prompt Prompt, out io.Writer) *Selector {
	return &Selector{
		prompt: prompt,
		out:    out,
	}
}

// Label is the single line shown for a result in the list.
func Label(r search.Result) string {
	return fmt.Sprintf("%s (Size: %s, Seeders: %d, Leechers: %d)", r.Name, format.Size(r.SizeBytes), r.Seeders, r.Leechers)
}

// Select returns the chosen result, or false if there was nothing to choose
// from or the user cancelled.
func (s *Selector) Select(results []search.Result) (search.Result, bool, error) {
	if len(results) == 0 {
		fmt.Fprintln(s.out, "No torrents found!")

		return search.Result{}, false, nil
	}

	choices := make([]string, len(results))
	for i, r := range results {
		choices[i] = Label(r)
	}

	i, ok, err := s.prompt(title, choices)
	if err != nil {
		return search.Result{}, false, err
	}

	if !ok {
		return search.Result{}, false, nil
	}

	if i < 0 || i >= len(results) {
		return search.Result{}, false, fmt.Errorf("prompt returned out of range choice %d", i)
	}

	return results[i], true, nil
}
