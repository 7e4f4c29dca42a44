// Package scrape implements dbsapi.SchoolService by fetching the school
// website and handing each page to an extractor.
package scrape

import (
	"context"
	"net/url"
	"strings"

	"github.com/dbsapi/dbsapi"
)

var _ dbsapi.SchoolService = (*Service)(nil)

// Service fetches a page and extracts from it on every call.
type Service struct {
	Fetcher   dbsapi.Fetcher
	Extractor dbsapi.Extractor

	// Pages to scrape. Default to the live site.
	HomeURL   string
	EventsURL string

	// EventImageHosts restricts the hosts EventImages may fetch.
	// Empty allows any host.
	EventImageHosts []string
}

// NewService creates a Service for the live site.
func NewService(fetcher dbsapi.Fetcher, extractor dbsapi.Extractor) *Service {
	return &Service{
		Fetcher:   fetcher,
		Extractor: extractor,
		HomeURL:   dbsapi.HomeURL,
		EventsURL: dbsapi.EventsURL,
	}
}

// Birthdays returns today's birthdays from the home page.
func (s *Service) Birthdays(ctx context.Context) ([]dbsapi.Birthday, error) {
	html, err := s.Fetcher.Fetch(ctx, s.HomeURL)
	if err != nil {
		return nil, err
	}
	return s.Extractor.ExtractBirthdays(html)
}

// Notices returns the notice board links from the home page.
func (s *Service) Notices(ctx context.Context) ([]dbsapi.Link, error) {
	return s.links(ctx, dbsapi.NoticesContainerID)
}

// CompetitionResults returns the competition result links from the home page.
func (s *Service) CompetitionResults(ctx context.Context) ([]dbsapi.Link, error) {
	return s.links(ctx, dbsapi.CompetitionResultsContainerID)
}

func (s *Service) links(ctx context.Context, containerID string) ([]dbsapi.Link, error) {
	html, err := s.Fetcher.Fetch(ctx, s.HomeURL)
	if err != nil {
		return nil, err
	}
	return s.Extractor.ExtractLinks(html, containerID)
}

// HousePoints returns the house standings from the home page.
func (s *Service) HousePoints(ctx context.Context) (dbsapi.HousePoints, error) {
	html, err := s.Fetcher.Fetch(ctx, s.HomeURL)
	if err != nil {
		return nil, err
	}
	return s.Extractor.ExtractHousePoints(html)
}

// Events returns the event pages linked from the events listing.
func (s *Service) Events(ctx context.Context) ([]dbsapi.Event, error) {
	html, err := s.Fetcher.Fetch(ctx, s.EventsURL)
	if err != nil {
		return nil, err
	}
	return s.Extractor.ExtractEvents(html)
}

// EventImages returns the event photos on the page at pageURL. The URL is
// validated before anything is fetched.
func (s *Service) EventImages(ctx context.Context, pageURL string) ([]string, error) {
	if err := s.validateEventURL(pageURL); err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return s.Extractor.ExtractEventImages(html)
}

// validateEventURL limits caller-supplied URLs to absolute http(s) URLs on
// an allowed host, since they are fetched from the server.
func (s *Service) validateEventURL(pageURL string) error {
	if pageURL == "" {
		return dbsapi.Errorf(dbsapi.EINVALID, "URL is required")
	}

	u, err := url.Parse(pageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return dbsapi.Errorf(dbsapi.EINVALID, "URL must be an absolute http or https URL")
	}

	if len(s.EventImageHosts) == 0 {
		return nil
	}
	for _, host := range s.EventImageHosts {
		if strings.EqualFold(host, u.Hostname()) {
			return nil
		}
	}
	return dbsapi.Errorf(dbsapi.EINVALID, "host %q is not allowed", u.Hostname())
}
