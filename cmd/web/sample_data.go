package main

import (
	"time"

	"github.com/camilledzt/skyportal/internal/history"
)

// sampleCatalog seeds the listing when no catalog file or database is
// configured, covering every relative-time band so a fresh checkout renders
// something representative.
func sampleCatalog() (*history.Catalog, error) {
	now := time.Now().UTC()
	return history.NewCatalog([]history.Source{
		{
			ID:      "ZTF21abultx",
			Summary: "A *bright* optical transient, first flagged by the nightly alert stream.",
			Versions: []history.Version{
				{Hash: "8f2aa1cd90", CreatedAt: now.Add(-45 * time.Second)},
				{Hash: "d41f0be772", CreatedAt: now.Add(-6 * time.Hour)},
				{Hash: "0c9e44ab13", CreatedAt: now.Add(-3 * 24 * time.Hour)},
			},
		},
		{
			ID:      "ZTF22prqmzk",
			Summary: "Slow riser near the galactic plane; photometry updated weekly.",
			Versions: []history.Version{
				{Hash: "5be017aa42", CreatedAt: now.Add(-12 * time.Minute)},
				{Hash: "77ad3c10f5", CreatedAt: now.Add(-26 * time.Hour)},
			},
		},
		{
			ID:      "ZTF18aaaaaa",
			Summary: "Archived source; no activity since the original classification.",
			Versions: []history.Version{
				{Hash: "e100cafe21", CreatedAt: now.Add(-45 * 24 * time.Hour)},
			},
		},
	})
}
