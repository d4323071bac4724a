package nav

import (
	"path"
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/public/sources"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/public/sources", Label: "Sources"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/public/sources" or "/public/sources/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path. Home comes
// first; known sections use their nav labels, deeper segments a prettified
// form of the path segment.
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	if clean == "." {
		clean = "/"
	}
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	href := ""
	for i, seg := range parts {
		if seg == "" {
			continue
		}
		href = href + "/" + seg
		label := titleFromSegment(seg)
		for _, it := range Main {
			if it.Path == href {
				label = it.Label
				break
			}
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: i == len(parts)-1})
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	// ASCII only is sufficient for slugs here
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
