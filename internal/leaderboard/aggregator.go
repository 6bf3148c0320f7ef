package leaderboard

import (
	"context"
	"errors"
	"time"

	"gamify-app/internal/calendar"
	"gamify-app/internal/limit"
	"gamify-app/internal/model"
)

const (
	defaultMaxDayFetches  = 4
	defaultMaxTeamFetches = 5
)

// Source is the external day- and team-granular data the aggregators fan
// out to. Implementations must honor ctx cancellation.
type Source interface {
	ListDayPoints(ctx context.Context, day calendar.Date) ([]model.PointEntry, error)
	ListTeams(ctx context.Context) ([]model.TeamRef, error)
	ListTeamMembers(ctx context.Context, teamID int) ([]model.User, error)
}

// Aggregator builds weekly and team leaderboards from a Source. Results
// are built fresh per call and never retained here.
type Aggregator struct {
	source    Source
	dayLimit  *limit.Limiter
	teamLimit *limit.Limiter
	now       func() time.Time
}

type Options struct {
	MaxDayFetches  int
	MaxTeamFetches int
	Now            func() time.Time
}

func NewAggregator(source Source, opts Options) (*Aggregator, error) {
	if source == nil {
		return nil, errors.New("leaderboard: source is required")
	}
	maxDay := opts.MaxDayFetches
	if maxDay <= 0 {
		maxDay = defaultMaxDayFetches
	}
	maxTeam := opts.MaxTeamFetches
	if maxTeam <= 0 {
		maxTeam = defaultMaxTeamFetches
	}
	dayLimit, err := limit.New(maxDay)
	if err != nil {
		return nil, err
	}
	teamLimit, err := limit.New(maxTeam)
	if err != nil {
		return nil, err
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Aggregator{source: source, dayLimit: dayLimit, teamLimit: teamLimit, now: now}, nil
}

// Today is the current date under the aggregator's clock. Callers that
// default a date parameter use this rather than the wall clock, so their
// notion of "today" matches WeekRange's.
func (a *Aggregator) Today() calendar.Date {
	return calendar.FromTime(a.now())
}
