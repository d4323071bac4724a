package main

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/camilledzt/skyportal/internal/history"
)

var viewNow = time.Date(2026, time.August, 29, 10, 30, 0, 0, time.UTC)

func testCatalog(t *testing.T) *history.Catalog {
	t.Helper()
	c, err := history.NewCatalog([]history.Source{
		{
			ID:      "ZTF21abultx",
			Summary: "A *bright* transient.",
			Versions: []history.Version{
				{Hash: "aaa2", CreatedAt: viewNow.Add(-45 * time.Second)},
				{Hash: "aaa1", CreatedAt: viewNow.Add(-6 * time.Hour)},
				{Hash: "aaa0", CreatedAt: viewNow.Add(-3 * 24 * time.Hour)},
			},
		},
		{
			ID: "ZTF22prqmzk",
			Versions: []history.Version{
				{Hash: "bbb1", CreatedAt: viewNow.Add(-2*time.Hour - 30*time.Minute)},
				{Hash: "bbb0", CreatedAt: viewNow.Add(-26 * time.Hour)},
			},
		},
		{
			ID: "ZTF18aaaaaa",
			Versions: []history.Version{
				{Hash: "ccc0", CreatedAt: viewNow.Add(-40 * 24 * time.Hour)},
			},
		},
	})
	require.NoError(t, err)
	return c
}

func values(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Add(pairs[i], pairs[i+1])
	}
	return v
}

func TestBuildViewEmptyQueryShowsAll(t *testing.T) {
	t.Parallel()

	view := buildSourceListingView(testCatalog(t), values(), viewNow)
	require.Equal(t, 3, view.Total)
	require.Equal(t, 3, view.VisibleCount)
	require.False(t, view.Empty)
	require.Len(t, view.Sources, 3)
	for _, card := range view.Sources {
		require.True(t, card.Visible)
		require.False(t, card.Expanded, "panels start collapsed")
	}
}

func TestBuildViewFilterIsCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		visible []string
	}{
		{name: "exact prefix", query: "ZTF21", visible: []string{"ZTF21abultx"}},
		{name: "mixed case", query: "zTf21ABu", visible: []string{"ZTF21abultx"}},
		{name: "inner substring", query: "prqm", visible: []string{"ZTF22prqmzk"}},
		{name: "shared substring", query: "ztf", visible: []string{"ZTF18aaaaaa", "ZTF21abultx", "ZTF22prqmzk"}},
		{name: "no match", query: "andromeda", visible: nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			view := buildSourceListingView(testCatalog(t), values("q", tc.query), viewNow)

			var got []string
			for _, card := range view.Sources {
				if card.Visible {
					got = append(got, card.ID)
				}
			}
			require.Equal(t, tc.visible, got)
			// filtering hides, it never removes
			require.Len(t, view.Sources, 3)
			require.Equal(t, len(tc.visible) == 0, view.Empty)
		})
	}
}

func TestBuildViewFilterLeavesExpandStateAlone(t *testing.T) {
	t.Parallel()

	q := values("q", "nothing-matches-this", "expanded", "ZTF21abultx")
	view := buildSourceListingView(testCatalog(t), q, viewNow)

	for _, card := range view.Sources {
		require.False(t, card.Visible)
		require.Equal(t, card.ID == "ZTF21abultx", card.Expanded)
	}
}

func TestBuildViewExpandIsIndependentPerSource(t *testing.T) {
	t.Parallel()

	view := buildSourceListingView(testCatalog(t), values("expanded", "ZTF22prqmzk"), viewNow)
	for _, card := range view.Sources {
		require.Equal(t, card.ID == "ZTF22prqmzk", card.Expanded, "only the toggled panel expands")
	}
}

func TestToggleTwiceReturnsToCollapsed(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	collapsed := buildSourceListingView(c, values(), viewNow)

	// first toggle: follow the card's own toggle URL
	first, err := url.Parse(collapsed.Sources[0].ToggleURL)
	require.NoError(t, err)
	opened := buildSourceListingView(c, first.Query(), viewNow)
	require.True(t, opened.Sources[0].Expanded)

	// second toggle returns to the initial state
	second, err := url.Parse(opened.Sources[0].ToggleURL)
	require.NoError(t, err)
	closed := buildSourceListingView(c, second.Query(), viewNow)
	require.False(t, closed.Sources[0].Expanded)
	require.Equal(t, collapsed, closed)
}

func TestBuildViewVersionRows(t *testing.T) {
	t.Parallel()

	view := buildSourceListingView(testCatalog(t), values(), viewNow)

	var card SourceCard
	for _, c := range view.Sources {
		if c.ID == "ZTF21abultx" {
			card = c
		}
	}
	require.Len(t, card.Versions, 3)
	require.Equal(t, 3, card.Versions[0].Number)
	require.Equal(t, 1, card.Versions[2].Number)
	require.Equal(t, "aaa2", card.Versions[0].Hash)
	require.Equal(t, "08/29/2026 10:29:15", card.Versions[0].Created)
	require.Equal(t, "/public/sources/ZTF21abultx/version/aaa2", card.Versions[0].DetailURL)
	require.Equal(t, "/public/sources/ZTF21abultx", card.DetailURL)
}

func TestBuildViewLatestLabels(t *testing.T) {
	t.Parallel()

	view := buildSourceListingView(testCatalog(t), values(), viewNow)

	labels := map[string]string{}
	for _, card := range view.Sources {
		labels[card.ID] = card.LatestLabel
	}
	require.Equal(t, "45 seconds ago", labels["ZTF21abultx"])
	require.Equal(t, "2 hours and 30 min ago", labels["ZTF22prqmzk"])
	// older than 30 days falls back to the absolute date
	require.Equal(t, "07/20/2026", labels["ZTF18aaaaaa"])
}

func TestBuildViewIsIdempotent(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	q := values("q", "ztf2", "expanded", "ZTF22prqmzk", "expanded", "ZTF21abultx")
	require.Equal(t,
		buildSourceListingView(c, q, viewNow),
		buildSourceListingView(c, q, viewNow),
	)
}

func TestBuildViewStateURLs(t *testing.T) {
	t.Parallel()

	q := values("q", "ztf", "expanded", "ZTF22prqmzk")
	view := buildSourceListingView(testCatalog(t), q, viewNow)
	require.Equal(t, "/public/sources?expanded=ZTF22prqmzk&q=ztf", view.PushURL)
	require.Equal(t, "/public/sources/table?expanded=ZTF22prqmzk", view.FilterURL)
	require.Equal(t, []string{"ZTF22prqmzk"}, view.ExpandedIDs)
}
