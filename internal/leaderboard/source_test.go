package leaderboard

import (
	"context"
	"time"

	"gamify-app/internal/calendar"
	"gamify-app/internal/model"
)

// fakeSource backs the aggregator tests; unset fields behave as empty.
type fakeSource struct {
	listDayPoints   func(ctx context.Context, day calendar.Date) ([]model.PointEntry, error)
	listTeams       func(ctx context.Context) ([]model.TeamRef, error)
	listTeamMembers func(ctx context.Context, teamID int) ([]model.User, error)
}

func (f *fakeSource) ListDayPoints(ctx context.Context, day calendar.Date) ([]model.PointEntry, error) {
	if f.listDayPoints == nil {
		return nil, nil
	}
	return f.listDayPoints(ctx, day)
}

func (f *fakeSource) ListTeams(ctx context.Context) ([]model.TeamRef, error) {
	if f.listTeams == nil {
		return nil, nil
	}
	return f.listTeams(ctx)
}

func (f *fakeSource) ListTeamMembers(ctx context.Context, teamID int) ([]model.User, error) {
	if f.listTeamMembers == nil {
		return nil, nil
	}
	return f.listTeamMembers(ctx, teamID)
}

func fixedNow(day string) func() time.Time {
	d, err := calendar.Parse(day)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return d.Time() }
}

func day(s string) calendar.Date {
	d, err := calendar.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}
