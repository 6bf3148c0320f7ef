package leaderboard

import (
	"sync"
	"time"

	"gamify-app/internal/calendar"
	"gamify-app/internal/model"
)

// Cache holds the most recent aggregation results between refresh runs.
// It replaces the module-level variables the UI used to lean on: callers
// own it, pass it where needed and invalidate it explicitly.
type Cache struct {
	mu        sync.RWMutex
	weekly    map[calendar.Date][]model.WeeklyEntry
	teams     []model.RankedTeam
	teamsSet  bool
	updatedAt time.Time
}

func NewCache() *Cache {
	return &Cache{weekly: make(map[calendar.Date][]model.WeeklyEntry)}
}

// Weekly returns the cached entries for the week starting at weekStart.
func (c *Cache) Weekly(weekStart calendar.Date) ([]model.WeeklyEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries, ok := c.weekly[weekStart]
	return entries, ok
}

func (c *Cache) SetWeekly(weekStart calendar.Date, entries []model.WeeklyEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.weekly[weekStart] = entries
	c.updatedAt = time.Now()
}

func (c *Cache) Teams() ([]model.RankedTeam, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.teams, c.teamsSet
}

func (c *Cache) SetTeams(teams []model.RankedTeam) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.teams = teams
	c.teamsSet = true
	c.updatedAt = time.Now()
}

func (c *Cache) UpdatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.updatedAt
}

// Invalidate drops everything; the next reads fall through to a fresh
// aggregation.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.weekly = make(map[calendar.Date][]model.WeeklyEntry)
	c.teams = nil
	c.teamsSet = false
}
