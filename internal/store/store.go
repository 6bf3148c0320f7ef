package store

import (
	"context"

	"gamify-app/internal/calendar"
	"gamify-app/internal/model"
)

type Store interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	ListDayPoints(ctx context.Context, day calendar.Date) ([]model.PointEntry, error)
	ListTeams(ctx context.Context) ([]model.TeamRef, error)
	ListTeamMembers(ctx context.Context, teamID int) ([]model.User, error)
}
