package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/dbsapi/dbsapi"
)

// ExtractEvents returns the event page links of the events listing.
// Links sharing a URL are collapsed into one entry that keeps the position
// of the first occurrence and the title of the last.
func (e *Extractor) ExtractEvents(html string) ([]dbsapi.Event, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	// Track seen URLs with their index in the result slice
	seen := make(map[string]int)
	events := []dbsapi.Event{}

	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, exists := a.Attr("href")
		if !exists || !e.markup.IsEventLink(href) {
			return
		}

		title := dbsapi.DefaultEventTitle
		if span := a.Find("span").First(); span.Length() > 0 {
			title = text(span)
		}

		event := dbsapi.Event{Title: title, URL: dbsapi.Absolutize(href)}
		if idx, ok := seen[event.URL]; ok {
			events[idx] = event
			return
		}
		seen[event.URL] = len(events)
		events = append(events, event)
	})

	return events, nil
}

// ExtractEventImages returns the event photos on an event page.
// Duplicates are dropped; the order carries no meaning.
func (e *Extractor) ExtractEventImages(html string) ([]string, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	images := []string{}

	doc.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
		src := img.AttrOr("src", "")
		if !e.markup.IsEventImage(src) {
			return
		}
		u := dbsapi.Absolutize(src)
		if seen[u] {
			return
		}
		seen[u] = true
		images = append(images, u)
	})

	return images, nil
}
