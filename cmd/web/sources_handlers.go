package main

import (
	"net/http"
	"time"

	handlersPkg "github.com/camilledzt/skyportal/internal/handlers"
	mw "github.com/camilledzt/skyportal/internal/middleware"
	"github.com/camilledzt/skyportal/internal/nav"
	"github.com/camilledzt/skyportal/internal/seo"
)

// PublicSourcesHandler renders the public source listing page.
func PublicSourcesHandler(w http.ResponseWriter, r *http.Request) {
	if catalog == nil {
		mw.WriteError(w, r, http.StatusServiceUnavailable, "catalog not loaded")
		return
	}
	view := buildSourceListingView(catalog, r.URL.Query(), nowFunc().UTC())

	title := "Sources"
	desc := "Every public source with its saved versions, newest first."

	vm := handlersPkg.PageData{
		Title:       title,
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path),
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path),
		Analytics:   handlersPkg.LoadAnalyticsFromEnv(),
		Sources:     view,
	}

	vm.SEO.Title = title + " | SkyPortal"
	vm.SEO.Description = desc
	vm.SEO.Canonical = absoluteURL(r)
	vm.SEO.OG.URL = vm.SEO.Canonical
	vm.SEO.OG.SiteName = "SkyPortal"
	vm.SEO.OG.Type = "website"
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = vm.SEO.Description
	vm.SEO.Twitter.Card = "summary"
	vm.SEO.JSONLD = listingJSONLD(r, view)

	renderPage(w, r, "sources", vm)
}

// SourcesTableFrag re-renders the search bar plus source list for htmx
// requests triggered by the filter input or a panel toggle.
func SourcesTableFrag(w http.ResponseWriter, r *http.Request) {
	if catalog == nil {
		mw.WriteError(w, r, http.StatusServiceUnavailable, "catalog not loaded")
		return
	}
	view := buildSourceListingView(catalog, r.URL.Query(), nowFunc().UTC())
	w.Header().Set("HX-Push-Url", view.PushURL)
	renderTemplate(w, r, "frag_sources_table", view)
}

func listingJSONLD(r *http.Request, view SourceListingView) []string {
	base := baseURL(r)
	items := make([]seo.ListItem, 0, len(view.Sources))
	for _, card := range view.Sources {
		items = append(items, seo.ListItem{Name: card.ID, Item: base + card.DetailURL})
	}
	crumbs := make([]seo.BreadcrumbItem, 0, 2)
	for _, c := range nav.Breadcrumbs(r.URL.Path) {
		crumbs = append(crumbs, seo.BreadcrumbItem{Name: c.Label, Item: base + c.Href})
	}
	return []string{
		seo.JSON(seo.WebSite("SkyPortal", base, base+sourcesPagePath+"?q=")),
		seo.JSON(seo.ItemList(items)),
		seo.JSON(seo.BreadcrumbList(crumbs)),
	}
}

// nowFunc anchors time-ago labels; tests pin it for deterministic output.
var nowFunc = time.Now
