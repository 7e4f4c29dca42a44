package scrape

import (
	"context"

	"github.com/dbsapi/dbsapi"
	"golang.org/x/sync/errgroup"
)

// Snapshot holds everything the home and events pages expose at one moment.
type Snapshot struct {
	Birthdays          []dbsapi.Birthday  `json:"birthdays"`
	Notices            []dbsapi.Link      `json:"notices"`
	CompetitionResults []dbsapi.Link      `json:"competitionResults"`
	HousePoints        dbsapi.HousePoints `json:"housePoints"`
	Events             []dbsapi.Event     `json:"events"`
}

// TakeSnapshot queries every fixed-page operation of svc concurrently.
// The first error cancels the remaining calls and is returned.
func TakeSnapshot(ctx context.Context, svc dbsapi.SchoolService) (*Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.Birthdays, err = svc.Birthdays(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Notices, err = svc.Notices(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.CompetitionResults, err = svc.CompetitionResults(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.HousePoints, err = svc.HousePoints(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Events, err = svc.Events(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
