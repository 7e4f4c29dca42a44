package mock

import (
	"context"

	"github.com/dbsapi/dbsapi"
)

var _ dbsapi.SchoolService = (*SchoolService)(nil)

// SchoolService is a mock implementation of dbsapi.SchoolService.
type SchoolService struct {
	BirthdaysFn          func(ctx context.Context) ([]dbsapi.Birthday, error)
	NoticesFn            func(ctx context.Context) ([]dbsapi.Link, error)
	CompetitionResultsFn func(ctx context.Context) ([]dbsapi.Link, error)
	HousePointsFn        func(ctx context.Context) (dbsapi.HousePoints, error)
	EventsFn             func(ctx context.Context) ([]dbsapi.Event, error)
	EventImagesFn        func(ctx context.Context, pageURL string) ([]string, error)
}

func (s *SchoolService) Birthdays(ctx context.Context) ([]dbsapi.Birthday, error) {
	return s.BirthdaysFn(ctx)
}

func (s *SchoolService) Notices(ctx context.Context) ([]dbsapi.Link, error) {
	return s.NoticesFn(ctx)
}

func (s *SchoolService) CompetitionResults(ctx context.Context) ([]dbsapi.Link, error) {
	return s.CompetitionResultsFn(ctx)
}

func (s *SchoolService) HousePoints(ctx context.Context) (dbsapi.HousePoints, error) {
	return s.HousePointsFn(ctx)
}

func (s *SchoolService) Events(ctx context.Context) ([]dbsapi.Event, error) {
	return s.EventsFn(ctx)
}

func (s *SchoolService) EventImages(ctx context.Context, pageURL string) ([]string, error) {
	return s.EventImagesFn(ctx, pageURL)
}
