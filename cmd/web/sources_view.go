package main

import (
	"fmt"
	"html/template"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/camilledzt/skyportal/internal/history"
	"github.com/camilledzt/skyportal/internal/markdown"
	"github.com/camilledzt/skyportal/internal/timeago"
)

// SourceListingView contains all data required to render the listing page and
// its table fragment. Interaction state (filter text, expanded panels) lives
// in the URL query; the builder below is the only place that interprets it.
type SourceListingView struct {
	Query        string
	Total        int
	VisibleCount int
	Empty        bool
	Sources      []SourceCard

	// PushURL is the canonical page URL for the current state, surfaced to
	// htmx via HX-Push-Url so fragment swaps stay bookmarkable.
	PushURL string

	// FilterURL is the table-fragment URL the search input targets; it
	// carries the expanded-panel state but not q, which htmx appends from
	// the input itself.
	FilterURL string

	// ExpandedIDs backs the non-htmx form fallback as hidden inputs.
	ExpandedIDs []string
}

// SourceCard represents one source's container on the listing.
type SourceCard struct {
	ID          string
	AnchorID    string
	DetailURL   string
	LatestLabel string
	Count       int
	SummaryHTML template.HTML

	// Visible reflects the live filter: filtered-out cards stay in the
	// document and are merely hidden.
	Visible bool

	// Expanded is the per-source panel state; it survives filter changes
	// untouched.
	Expanded    bool
	PanelID     string
	ToggleURL   string
	TogglePage  string
	ToggleLabel string

	Versions []VersionRow
}

// VersionRow is one entry inside an expanded panel.
type VersionRow struct {
	Number    int
	Hash      string
	Created   string
	DetailURL string
}

const (
	sourcesPagePath  = "/public/sources"
	sourcesTablePath = "/public/sources/table"
)

// buildSourceListingView assembles the listing view model from the validated
// catalog and the request's query values. Pure given (catalog, q, now), so
// rendering the same state twice produces identical output.
func buildSourceListingView(c *history.Catalog, q url.Values, now time.Time) SourceListingView {
	query := strings.TrimSpace(q.Get("q"))
	expanded := expandedSet(q["expanded"])

	sources := c.Sources()
	view := SourceListingView{
		Query:       query,
		Total:       len(sources),
		PushURL:     stateURL(sourcesPagePath, query, expanded),
		FilterURL:   stateURL(sourcesTablePath, "", expanded),
		ExpandedIDs: sortedIDs(expanded),
	}

	needle := strings.ToLower(query)
	for _, s := range sources {
		visible := needle == "" || strings.Contains(strings.ToLower(s.ID), needle)
		isOpen := expanded[s.ID]

		card := SourceCard{
			ID:          s.ID,
			AnchorID:    "source-" + s.ID,
			DetailURL:   sourcesPagePath + "/" + url.PathEscape(s.ID),
			LatestLabel: timeago.Format(s.Latest().CreatedAt, now),
			Count:       s.Count(),
			SummaryHTML: markdown.Render(s.Summary),
			Visible:     visible,
			Expanded:    isOpen,
			PanelID:     "source-" + s.ID + "-versions",
			ToggleURL:   stateURL(sourcesTablePath, query, toggled(expanded, s.ID)),
			TogglePage:  stateURL(sourcesPagePath, query, toggled(expanded, s.ID)),
		}
		if isOpen {
			card.ToggleLabel = "Hide versions"
		} else {
			card.ToggleLabel = fmt.Sprintf("View all %d versions", s.Count())
		}
		for _, e := range s.Entries() {
			card.Versions = append(card.Versions, VersionRow{
				Number:    e.Number,
				Hash:      e.Hash,
				Created:   timeago.Timestamp(e.CreatedAt),
				DetailURL: card.DetailURL + "/version/" + url.PathEscape(e.Hash),
			})
		}
		if visible {
			view.VisibleCount++
		}
		view.Sources = append(view.Sources, card)
	}
	view.Empty = view.VisibleCount == 0
	return view
}

func expandedSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			set[id] = true
		}
	}
	return set
}

// toggled returns a copy of set with id's membership flipped. Only the one
// source changes state; every other panel keeps its own.
func toggled(set map[string]bool, id string) map[string]bool {
	out := make(map[string]bool, len(set)+1)
	for k, v := range set {
		if v {
			out[k] = true
		}
	}
	if out[id] {
		delete(out, id)
	} else {
		out[id] = true
	}
	return out
}

func sortedIDs(expanded map[string]bool) []string {
	ids := make([]string, 0, len(expanded))
	for id, ok := range expanded {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// stateURL encodes the interaction state onto path. Expanded IDs are sorted
// so equal states always produce the same URL.
func stateURL(path, query string, expanded map[string]bool) string {
	values := url.Values{}
	if query != "" {
		values.Set("q", query)
	}
	for _, id := range sortedIDs(expanded) {
		values.Add("expanded", id)
	}
	if enc := values.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}
