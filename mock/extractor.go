package mock

import "github.com/dbsapi/dbsapi"

var _ dbsapi.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of dbsapi.Extractor.
type Extractor struct {
	ExtractBirthdaysFn   func(html string) ([]dbsapi.Birthday, error)
	ExtractLinksFn       func(html string, containerID string) ([]dbsapi.Link, error)
	ExtractHousePointsFn func(html string) (dbsapi.HousePoints, error)
	ExtractEventsFn      func(html string) ([]dbsapi.Event, error)
	ExtractEventImagesFn func(html string) ([]string, error)
}

func (e *Extractor) ExtractBirthdays(html string) ([]dbsapi.Birthday, error) {
	return e.ExtractBirthdaysFn(html)
}

func (e *Extractor) ExtractLinks(html string, containerID string) ([]dbsapi.Link, error) {
	return e.ExtractLinksFn(html, containerID)
}

func (e *Extractor) ExtractHousePoints(html string) (dbsapi.HousePoints, error) {
	return e.ExtractHousePointsFn(html)
}

func (e *Extractor) ExtractEvents(html string) ([]dbsapi.Event, error) {
	return e.ExtractEventsFn(html)
}

func (e *Extractor) ExtractEventImages(html string) ([]string, error) {
	return e.ExtractEventImagesFn(html)
}
