package leaderboard

import (
	"sort"
	"sync"
	"time"
)

// PathType mirrors the three selectable paths an entry can record
// completing under.
type PathType string

const (
	Warrior PathType = "warrior"
	Mystic  PathType = "mystic"
	Stealth PathType = "stealth"
)

func validPathType(p PathType) bool {
	return p == Warrior || p == Mystic || p == Stealth
}

// Entry is a single completed run  Days/Hours/Minutes back the
// fastest-time sort so comparisons never re-parse CompletionTime.
type Entry struct {
	PlayerID       string    `json:"player_id"`
	PlayerName     string    `json:"player_name"`
	Days           int       `json:"days"`
	Hours          int       `json:"hours"`
	Minutes        int       `json:"minutes"`
	CompletionTime string    `json:"completion_time"`
	Achievements   int       `json:"achievements"`
	PathType       PathType  `json:"path_type"`
	Date           time.Time `json:"date"`
}

func (e Entry) fasterThan(o Entry) bool {
	if e.Days != o.Days {
		return e.Days < o.Days
	}
	if e.Hours != o.Hours {
		return e.Hours < o.Hours
	}
	return e.Minutes < o.Minutes
}

// Board is the process-wide leaderboard handle. The zero value is ready
// to use.
type Board struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewBoard returns an empty leaderboard.
func NewBoard() *Board {
	return &Board{entries: map[string]Entry{}}
}

// AddEntry records e, rejecting an unrecognized path_type. An existing
// entry for the same player is replaced only if e has a strictly greater
// achievement count.
func (b *Board) AddEntry(e Entry) bool {
	if !validPathType(e.PathType) {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, ok := b.entries[e.PlayerID]; ok && e.Achievements <= existing.Achievements {
		return false
	}
	if b.entries == nil {
		b.entries = map[string]Entry{}
	}
	b.entries[e.PlayerID] = e
	return true
}

// snapshot returns a defensive copy of all entries for lock-free reading
// by the query methods below.
func (b *Board) snapshot() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Entry, 0, len(b.entries))
	for _, e := range b.entries {
		out = append(out, e)
	}
	return out
}

// TopByFastest returns up to n entries ordered by ascending
// (days, hours, minutes).
func (b *Board) TopByFastest(n int) []Entry {
	all := b.snapshot()
	sort.Slice(all, func(i, j int) bool { return all[i].fasterThan(all[j]) })
	return limit(all, n)
}

// TopByAchievements returns up to n entries ordered by
// (achievements desc, date asc)  Since the board holds at most one
// entry per player, this is automatically one entry per player.
func (b *Board) TopByAchievements(n int) []Entry {
	all := b.snapshot()
	sort.Slice(all, func(i, j int) bool {
		if all[i].Achievements != all[j].Achievements {
			return all[i].Achievements > all[j].Achievements
		}
		return all[i].Date.Before(all[j].Date)
	})
	return limit(all, n)
}

func limit(all []Entry, n int) []Entry {
	if n < len(all) {
		return all[:n]
	}
	return all
}

// Category selects which ranking rank_of consults.
type Category string

const (
	ByFastest      Category = "fastest"
	ByAchievements Category = "achievements"
)

// RankOf returns the 1-based rank of playerID within category, or false
// if the player has no entry.
func (b *Board) RankOf(playerID string, category Category) (int, bool) {
	var ranked []Entry
	switch category {
	case ByFastest:
		ranked = b.TopByFastest(len(b.snapshot()))
	default:
		ranked = b.TopByAchievements(len(b.snapshot()))
	}

	for i, e := range ranked {
		if e.PlayerID == playerID {
			return i + 1, true
		}
	}
	return 0, false
}
