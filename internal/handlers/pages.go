package handlers

import (
	"github.com/camilledzt/skyportal/internal/nav"
	"github.com/camilledzt/skyportal/internal/seo"
)

// PageData is a generic view model for pages using the shared layout.
type PageData struct {
	Title     string
	SEO       seo.Meta
	Analytics Analytics

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Optional per-page view model payloads
	Sources any
}
