// Package render turns search results into displayable text. Every
// renderer fills a fixed template and escapes the values it interpolates.
package render

import (
	"fmt"
	"strings"

	"github.com/five82/reposearch/internal/github"
)

// Renderer produces the two views of the client: the result list and the
// repository detail panel.
type Renderer interface {
	// List renders a heading naming resp.Query followed by one row per
	// record, in response order, each row tagged with its index.
	List(resp *github.SearchResponse) string
	// Detail renders name, language, owner, followers, description and url.
	Detail(repo github.Repository) string
}

// Format names a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

// Formats lists the accepted format names.
func Formats() []Format {
	return []Format{FormatText, FormatHTML, FormatJSON}
}

// ForFormat returns the renderer for name. Text output is unstyled.
func ForFormat(name string) (Renderer, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatText, "":
		return NewTerminal(Palette{}), nil
	case FormatHTML:
		return HTML{}, nil
	case FormatJSON:
		return JSON{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, html or json)", name)
	}
}
