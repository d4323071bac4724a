package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// WebSite returns a minimal WebSite schema with optional SearchAction.
func WebSite(name, url, searchActionURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if searchActionURL != "" {
		m["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      searchActionURL + "{search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return m
}

// ListItem maps a position and absolute item URL for ItemList schemas.
type ListItem struct {
	Name string
	Item string
}

// ItemList returns an ItemList schema for an ordered collection page.
func ItemList(items []ListItem) map[string]any {
	elems := make([]map[string]any, 0, len(items))
	for i, it := range items {
		e := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
		}
		if it.Item != "" {
			e["item"] = it.Item
		}
		elems = append(elems, e)
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"itemListElement": elems,
	}
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList returns a BreadcrumbList schema.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	elems := make([]map[string]any, 0, len(items))
	for i, it := range items {
		e := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
		}
		if it.Item != "" {
			e["item"] = it.Item
		}
		elems = append(elems, e)
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": elems,
	}
}
