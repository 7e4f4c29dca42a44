package main

import (
	"encoding/json"
	"fmt"

	"github.com/dbsapi/dbsapi"
	"github.com/dbsapi/dbsapi/scrape"
)

// Run executes the scrape command, printing the same document the matching
// API endpoint would return.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	v, err := c.scrape(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dbsapi.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *ScrapeCmd) scrape(deps *Dependencies) (any, error) {
	ctx, svc := deps.Ctx, deps.Service

	switch c.Target {
	case "birthdays":
		v, err := svc.Birthdays(ctx)
		return map[string]any{"birthdays": v}, err
	case "notices":
		v, err := svc.Notices(ctx)
		return map[string]any{"notices": v}, err
	case "competition-results":
		v, err := svc.CompetitionResults(ctx)
		return map[string]any{"competitionResults": v}, err
	case "house-points":
		v, err := svc.HousePoints(ctx)
		return map[string]any{"housePoints": v}, err
	case "events":
		v, err := svc.Events(ctx)
		return map[string]any{"events": v}, err
	case "event-images":
		v, err := svc.EventImages(ctx, c.URL)
		return map[string]any{"images": v}, err
	case "all":
		return scrape.TakeSnapshot(ctx, svc)
	default:
		return nil, dbsapi.Errorf(dbsapi.EINVALID, "unknown target %q", c.Target)
	}
}
