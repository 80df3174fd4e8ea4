// Package markup is a thin facade over the HTML tree-query library so the
// extractors depend on selectors and regions, not on a concrete parser.
package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed page that can be queried with CSS-style selectors.
type Document interface {
	// Locate returns the first region matching the selector, or nil.
	Locate(selector string) Region
	// List returns all regions matching the selector, in document order.
	List(selector string) []Region
}

// Region is a matched element; it can be queried further or read as text.
type Region interface {
	Document
	// Text returns the region's whole text content, trimmed.
	Text() string
	// DirectText returns the first non-blank text node that is a direct
	// child of the region's element, skipping text nested in child tags.
	// Empty when the element has no such node.
	DirectText() string
}

// Parse builds a queryable document from an HTML page body.
func Parse(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &region{sel: doc.Selection}, nil
}

type region struct {
	sel *goquery.Selection
}

func (r *region) Locate(selector string) Region {
	found := r.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil
	}
	return &region{sel: found}
}

func (r *region) List(selector string) []Region {
	var regions []Region
	r.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		regions = append(regions, &region{sel: s})
	})
	return regions
}

func (r *region) Text() string {
	return strings.TrimSpace(r.sel.Text())
}

func (r *region) DirectText() string {
	if len(r.sel.Nodes) == 0 {
		return ""
	}
	for child := r.sel.Nodes[0].FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.TextNode {
			continue
		}
		if text := strings.TrimSpace(child.Data); text != "" {
			return text
		}
	}
	return ""
}
