package store

import (
	"context"
	"os"
	"sort"
	"strings"
	"sync"

	"gamify-app/internal/calendar"
	"gamify-app/internal/model"
)

type MemoryStore struct {
	mu        sync.RWMutex
	users     map[int]model.User
	teams     map[int]model.TeamRef
	rosters   map[int][]int
	dayPoints map[calendar.Date][]model.PointEntry
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		users:     make(map[int]model.User),
		teams:     make(map[int]model.TeamRef),
		rosters:   make(map[int][]int),
		dayPoints: make(map[calendar.Date][]model.PointEntry),
	}
	if strings.ToLower(strings.TrimSpace(os.Getenv("APP"))) != "prod" {
		seedData(s)
	}

	return s
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].TotalPoints == users[j].TotalPoints {
			return users[i].ID < users[j].ID
		}
		return users[i].TotalPoints > users[j].TotalPoints
	})
	return users, nil
}

func (s *MemoryStore) ListDayPoints(ctx context.Context, day calendar.Date) ([]model.PointEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]model.PointEntry, len(s.dayPoints[day]))
	copy(entries, s.dayPoints[day])
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points == entries[j].Points {
			return entries[i].UserID < entries[j].UserID
		}
		return entries[i].Points > entries[j].Points
	})
	return entries, nil
}

func (s *MemoryStore) ListTeams(ctx context.Context) ([]model.TeamRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]model.TeamRef, 0, len(s.teams))
	for _, t := range s.teams {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}

func (s *MemoryStore) ListTeamMembers(ctx context.Context, teamID int) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make([]model.User, 0, len(s.rosters[teamID]))
	for _, userID := range s.rosters[teamID] {
		if u, ok := s.users[userID]; ok {
			members = append(members, u)
		}
	}
	return members, nil
}

// SetDayPoints replaces one day's entries; used by seeds and tests.
func (s *MemoryStore) SetDayPoints(day calendar.Date, entries []model.PointEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dayPoints[day] = entries
}
