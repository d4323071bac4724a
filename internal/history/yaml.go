package history

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlCatalog mirrors the on-disk catalog file:
//
//	sources:
//	  - id: ZTF21abultx
//	    summary: optional *markdown* blurb
//	    versions:
//	      - hash: 1f2e3d...
//	        created_at: 2026-08-01T12:00:00Z
type yamlCatalog struct {
	Sources []yamlSource `yaml:"sources"`
}

type yamlSource struct {
	ID       string        `yaml:"id"`
	Summary  string        `yaml:"summary"`
	Versions []yamlVersion `yaml:"versions"`
}

type yamlVersion struct {
	Hash      string    `yaml:"hash"`
	CreatedAt time.Time `yaml:"created_at"`
}

// LoadYAML reads and validates a catalog file. Decode errors and contract
// violations both surface here, before anything renders.
func LoadYAML(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("history: read catalog: %w", err)
	}
	var doc yamlCatalog
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("history: decode catalog %s: %w", path, err)
	}
	sources := make([]Source, 0, len(doc.Sources))
	for _, ys := range doc.Sources {
		id := strings.TrimSpace(ys.ID)
		if id == "" {
			return nil, fmt.Errorf("history: decode catalog %s: source with empty id", path)
		}
		s := Source{ID: id, Summary: ys.Summary}
		for _, yv := range ys.Versions {
			s.Versions = append(s.Versions, Version{
				Hash:      strings.TrimSpace(yv.Hash),
				CreatedAt: yv.CreatedAt.UTC(),
			})
		}
		sources = append(sources, s)
	}
	return NewCatalog(sources)
}
