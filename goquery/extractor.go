// Package goquery implements dbsapi.Extractor on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dbsapi/dbsapi"
)

var _ dbsapi.Extractor = (*Extractor)(nil)

// Extractor locates the site's fragments using the predicates of a
// dbsapi.Markup. It holds no per-document state and is safe for concurrent use.
type Extractor struct {
	markup dbsapi.Markup
}

// NewExtractor creates an Extractor for the given markup.
// A nil markup selects dbsapi.NewSiteMarkup().
func NewExtractor(markup dbsapi.Markup) *Extractor {
	if markup == nil {
		markup = dbsapi.NewSiteMarkup()
	}
	return &Extractor{markup: markup}
}

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, dbsapi.Errorf(dbsapi.EPARSE, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// firstSpan returns the first span below sel whose id satisfies match.
// The returned selection is empty when there is none.
func firstSpan(sel *goquery.Selection, match func(id string) bool) *goquery.Selection {
	return sel.Find("span[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return match(s.AttrOr("id", ""))
	}).First()
}

// text returns the trimmed text content of sel.
func text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
