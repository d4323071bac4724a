// Package history holds the read-only model behind the public source listing:
// named sources, each owning an ordered history of versions. A catalog is a
// validated snapshot; it is built once before rendering and never mutated.
package history

import (
	"fmt"
	"sort"
	"time"
)

// Version is one immutable snapshot belonging to a source.
type Version struct {
	Hash      string
	CreatedAt time.Time // UTC
}

// Source is a named entity owning versions ordered newest-first
// (index 0 is the most recently created version).
type Source struct {
	ID       string
	Summary  string // optional markdown blurb shown on the listing
	Versions []Version
}

// Entry pairs a version with its display number. For a source with N
// versions the newest is numbered N and the oldest 1.
type Entry struct {
	Number int
	Version
}

// MalformedHistoryError reports a source whose version history violates the
// input contract: an empty history, or versions out of newest-first order.
type MalformedHistoryError struct {
	SourceID string
	Reason   string
}

func (e *MalformedHistoryError) Error() string {
	return fmt.Sprintf("history: malformed source %q: %s", e.SourceID, e.Reason)
}

// Catalog is a validated, immutable collection of sources. Iteration order
// is deterministic: sources are sorted by ID, since the external input is a
// mapping with no order of its own.
type Catalog struct {
	sources []Source
}

// NewCatalog validates every source and returns the snapshot. It fails with
// *MalformedHistoryError rather than rendering a partially broken list: the
// numbering contract cannot hold for an empty or misordered history.
func NewCatalog(sources []Source) (*Catalog, error) {
	out := make([]Source, len(sources))
	copy(out, sources)
	for _, s := range out {
		if err := validate(s); err != nil {
			return nil, err
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return &Catalog{sources: out}, nil
}

func validate(s Source) error {
	if len(s.Versions) == 0 {
		return &MalformedHistoryError{SourceID: s.ID, Reason: "no versions"}
	}
	for i := 1; i < len(s.Versions); i++ {
		if s.Versions[i].CreatedAt.After(s.Versions[i-1].CreatedAt) {
			return &MalformedHistoryError{
				SourceID: s.ID,
				Reason: fmt.Sprintf("versions out of order: index %d (%s) is newer than index %d",
					i, s.Versions[i].Hash, i-1),
			}
		}
	}
	return nil
}

// Sources returns the sources sorted by ID. Callers must not mutate the
// returned slice's histories.
func (c *Catalog) Sources() []Source {
	out := make([]Source, len(c.sources))
	copy(out, c.sources)
	return out
}

// Len reports how many sources the catalog holds.
func (c *Catalog) Len() int { return len(c.sources) }

// Latest returns the most recent version of s.
func (s Source) Latest() Version { return s.Versions[0] }

// Count returns the number of versions s owns.
func (s Source) Count() int { return len(s.Versions) }

// Entries returns the full history newest-first with display numbers: the
// entry at position i of N carries number N-i, so labels run N down to 1
// with no gaps or repeats.
func (s Source) Entries() []Entry {
	n := len(s.Versions)
	out := make([]Entry, n)
	for i, v := range s.Versions {
		out[i] = Entry{Number: n - i, Version: v}
	}
	return out
}
