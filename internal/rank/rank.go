package rank

import (
	"errors"
	"fmt"
)

// Threshold maps a minimum point total to a tier name.
type Threshold struct {
	MinPoints int
	Tier      string
}

// Table is an ordered set of thresholds, highest minimum first, ending
// at a 0-floor catch-all tier. Validated once at construction so tier
// lookups can never fail.
type Table struct {
	thresholds []Threshold
}

// DefaultThresholds is the product tier ladder.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{MinPoints: 5000, Tier: "Grandmaster"},
		{MinPoints: 3000, Tier: "Master"},
		{MinPoints: 2500, Tier: "Diamond"},
		{MinPoints: 2000, Tier: "Platinum"},
		{MinPoints: 1500, Tier: "Gold"},
		{MinPoints: 1000, Tier: "Silver"},
		{MinPoints: 500, Tier: "Bronze"},
		{MinPoints: 0, Tier: "Iron"},
	}
}

func NewTable(thresholds []Threshold) (*Table, error) {
	if len(thresholds) == 0 {
		return nil, errors.New("rank: threshold table is empty")
	}
	for i, th := range thresholds {
		if th.Tier == "" {
			return nil, fmt.Errorf("rank: threshold %d has no tier name", i)
		}
		if i > 0 && th.MinPoints >= thresholds[i-1].MinPoints {
			return nil, fmt.Errorf("rank: thresholds not strictly descending at %q", th.Tier)
		}
	}
	if thresholds[len(thresholds)-1].MinPoints != 0 {
		return nil, errors.New("rank: last threshold must be the 0-floor tier")
	}
	table := make([]Threshold, len(thresholds))
	copy(table, thresholds)
	return &Table{thresholds: table}, nil
}

// ResolveTier returns the tier whose minimum is the highest one not
// exceeding points. Negative input falls through to the floor tier.
func (t *Table) ResolveTier(points int) string {
	for _, th := range t.thresholds {
		if points >= th.MinPoints {
			return th.Tier
		}
	}
	return t.thresholds[len(t.thresholds)-1].Tier
}

// NextThreshold returns the smallest threshold strictly above points,
// or false at or above the top tier.
func (t *Table) NextThreshold(points int) (int, bool) {
	for i := len(t.thresholds) - 1; i >= 0; i-- {
		if t.thresholds[i].MinPoints > points {
			return t.thresholds[i].MinPoints, true
		}
	}
	return 0, false
}

// PreviousThreshold returns the largest threshold at or below points.
// False only for points below the floor.
func (t *Table) PreviousThreshold(points int) (int, bool) {
	for _, th := range t.thresholds {
		if points >= th.MinPoints {
			return th.MinPoints, true
		}
	}
	return 0, false
}

// Thresholds returns a copy of the table, highest first.
func (t *Table) Thresholds() []Threshold {
	out := make([]Threshold, len(t.thresholds))
	copy(out, t.thresholds)
	return out
}
