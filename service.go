package dbsapi

import "context"

// SchoolService exposes the data scraped from the school website.
// Every call fetches the relevant page again; nothing is cached.
type SchoolService interface {
	Birthdays(ctx context.Context) ([]Birthday, error)
	Notices(ctx context.Context) ([]Link, error)
	CompetitionResults(ctx context.Context) ([]Link, error)
	HousePoints(ctx context.Context) (HousePoints, error)
	Events(ctx context.Context) ([]Event, error)

	// EventImages fetches the caller-supplied event page.
	// Returns EINVALID if pageURL is empty, not http(s), or not allowed.
	EventImages(ctx context.Context, pageURL string) ([]string, error)
}
