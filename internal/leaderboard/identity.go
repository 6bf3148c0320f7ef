package leaderboard

import "strings"

// SelfKey is the reserved canonical key anonymous and demo data sets use
// to mark the caller's own row.
const SelfKey = "You"

// Entry is any ranked row exposing a canonical key and a display name.
type Entry interface {
	RankKey() string
	RankName() string
	RankPoints() int
}

// Self locates the signed-in identity inside a rank-ordered list.
type Self struct {
	Index int
	Rank  int
	// Synthesized marks a placeholder built for an identity with no row
	// in the list, so callers can render it distinctly.
	Synthesized bool
}

// ResolveSelf finds the caller's row in a rank-ordered list. A signed-in
// identity is matched by exact canonical key, then by case-insensitive
// display name. The reserved SelfKey row is the last resort and the only
// match for anonymous callers. Rank is the row's 1-based position.
func ResolveSelf[E Entry](entries []E, signedIn string) (Self, bool) {
	if signedIn != "" {
		for i, e := range entries {
			if e.RankKey() == signedIn {
				return Self{Index: i, Rank: i + 1}, true
			}
		}
		for i, e := range entries {
			if strings.EqualFold(e.RankName(), signedIn) {
				return Self{Index: i, Rank: i + 1}, true
			}
		}
	}
	for i, e := range entries {
		if e.RankKey() == SelfKey {
			return Self{Index: i, Rank: i + 1}, true
		}
	}
	return Self{}, false
}

// SynthesizeSelf builds the placeholder for an identity absent from
// entries, ranking it below every row with strictly more points.
func SynthesizeSelf[E Entry](entries []E, points int) Self {
	higher := 0
	for _, e := range entries {
		if e.RankPoints() > points {
			higher++
		}
	}
	return Self{Index: -1, Rank: higher + 1, Synthesized: true}
}
