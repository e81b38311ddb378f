package riot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadMatch reads and decodes a match document from the given path.
func LoadMatch(path string) (*Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open match document: %w", err)
	}
	defer f.Close()

	m, err := DecodeMatch(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return m, nil
}

// LoadTimeline reads and decodes a timeline document from the given path.
func LoadTimeline(path string) (*Timeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open timeline document: %w", err)
	}
	defer f.Close()

	tl, err := DecodeTimeline(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return tl, nil
}

// DecodeMatch decodes a match document from r.
func DecodeMatch(r io.Reader) (*Match, error) {
	var m Match
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	if len(m.Info.Participants) == 0 {
		return nil, fmt.Errorf("match document has no participants")
	}
	return &m, nil
}

// DecodeTimeline decodes a timeline document from r.
func DecodeTimeline(r io.Reader) (*Timeline, error) {
	var tl Timeline
	if err := json.NewDecoder(r).Decode(&tl); err != nil {
		return nil, err
	}
	if len(tl.Info.Frames) == 0 {
		return nil, fmt.Errorf("timeline document has no frames")
	}
	return &tl, nil
}
