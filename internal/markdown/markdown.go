// Package markdown renders the optional per-source summary blurbs shown on
// the public listing. Summaries arrive from the catalog as untrusted
// markdown and are sanitized before they ever reach a template.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	renderer = goldmark.New(goldmark.WithExtensions(extension.Linkify))
	policy   = newSummaryPolicy()
)

func newSummaryPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	return p
}

// Render converts summary markdown to sanitized HTML. A render failure
// degrades to an empty blurb; the listing must not break over a summary.
func Render(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(src), &buf); err != nil {
		return ""
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}
