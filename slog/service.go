package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/dbsapi/dbsapi"
)

// Ensure LoggingSchoolService implements dbsapi.SchoolService.
var _ dbsapi.SchoolService = (*LoggingSchoolService)(nil)

// LoggingSchoolService wraps a SchoolService with logging of each call and
// the size of its result.
type LoggingSchoolService struct {
	next   dbsapi.SchoolService
	logger *slog.Logger
}

// NewLoggingSchoolService creates a new LoggingSchoolService.
func NewLoggingSchoolService(next dbsapi.SchoolService, logger *slog.Logger) *LoggingSchoolService {
	return &LoggingSchoolService{next: next, logger: logger}
}

func (s *LoggingSchoolService) log(op string, begin time.Time, count int, err error) {
	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelWarn
	}
	s.logger.Log(context.Background(), level, op,
		"count", count,
		"duration", time.Since(begin),
		"code", dbsapi.ErrorCode(err),
		"err", err,
	)
}

func (s *LoggingSchoolService) Birthdays(ctx context.Context) (birthdays []dbsapi.Birthday, err error) {
	defer func(begin time.Time) { s.log("birthdays", begin, len(birthdays), err) }(time.Now())
	return s.next.Birthdays(ctx)
}

func (s *LoggingSchoolService) Notices(ctx context.Context) (links []dbsapi.Link, err error) {
	defer func(begin time.Time) { s.log("notices", begin, len(links), err) }(time.Now())
	return s.next.Notices(ctx)
}

func (s *LoggingSchoolService) CompetitionResults(ctx context.Context) (links []dbsapi.Link, err error) {
	defer func(begin time.Time) { s.log("competition results", begin, len(links), err) }(time.Now())
	return s.next.CompetitionResults(ctx)
}

func (s *LoggingSchoolService) HousePoints(ctx context.Context) (points dbsapi.HousePoints, err error) {
	defer func(begin time.Time) { s.log("house points", begin, len(points), err) }(time.Now())
	return s.next.HousePoints(ctx)
}

func (s *LoggingSchoolService) Events(ctx context.Context) (events []dbsapi.Event, err error) {
	defer func(begin time.Time) { s.log("events", begin, len(events), err) }(time.Now())
	return s.next.Events(ctx)
}

func (s *LoggingSchoolService) EventImages(ctx context.Context, pageURL string) (images []string, err error) {
	defer func(begin time.Time) {
		s.log("event images", begin, len(images), err)
	}(time.Now())
	return s.next.EventImages(ctx, pageURL)
}
