package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dbsapi/dbsapi"
)

// ExtractLinks returns the labelled anchors inside the element whose id is
// containerID. A missing container yields no links.
//
// Link lists are rendered by the API even when extraction fails, so a panic
// during traversal is recovered and returned as EPARSE.
func (e *Extractor) ExtractLinks(html string, containerID string) (links []dbsapi.Link, err error) {
	defer func() {
		if r := recover(); r != nil {
			links, err = nil, dbsapi.Errorf(dbsapi.EPARSE, "failed to extract links from %s: %v", containerID, r)
		}
	}()

	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	links = []dbsapi.Link{}
	container := doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("id", "") == containerID
	}).First()
	if container.Length() == 0 {
		return links, nil
	}

	container.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		title := firstSpan(a, e.markup.IsLinkTitle)
		if title.Length() == 0 {
			return
		}
		href := strings.TrimSpace(a.AttrOr("href", ""))
		links = append(links, dbsapi.Link{
			Title: text(title),
			URL:   dbsapi.Absolutize(href),
		})
	})

	return links, nil
}
