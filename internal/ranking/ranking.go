// Package ranking turns the backend's cumulative counters into ordered,
// presentation-ready leaderboards and per-match scout views. Everything here
// is a pure function over fetched data; nothing is cached or mutated.
package ranking

import (
	"sort"
	"strings"

	"github.com/sicksfc/peladeiro/internal/pelada"
)

// Entry is a player annotated with the value of the currently selected
// statistic. It is a view-time projection, never persisted.
type Entry struct {
	Player pelada.Player `json:"player"`
	Value  int           `json:"value"`
}

// PodiumSize is how many leaders the highlighted top slice shows.
const PodiumSize = 3

// Rank produces the leaderboard for a statistic: players whose name does not
// contain the search term (case-insensitive) are excluded, the rest are
// sorted descending by the statistic's value. Ties keep the relative order of
// the input sequence; there is no secondary tie-break key.
func Rank(players []pelada.Player, stat pelada.Statistic, searchTerm string) []Entry {
	needle := strings.ToLower(searchTerm)

	entries := make([]Entry, 0, len(players))
	for _, p := range players {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		entries = append(entries, Entry{Player: p, Value: p.Value(stat)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	return entries
}

// Podium is the top slice of a ranked sequence, used for highlighted
// presentation. It is a view on Rank's output, not a separate computation.
func Podium(entries []Entry) []Entry {
	if len(entries) <= PodiumSize {
		return entries
	}
	return entries[:PodiumSize]
}

// FilterScouts sorts and filters one match's scout rows. The "all" sentinel
// preserves the original fetch order and ignores onlyNonZero; a concrete
// statistic sorts descending (stable on ties) and, with onlyNonZero set,
// drops rows whose value for that statistic is 0.
func FilterScouts(scouts []pelada.PlayerScout, stat pelada.Statistic, onlyNonZero bool) []pelada.PlayerScout {
	out := make([]pelada.PlayerScout, len(scouts))
	copy(out, scouts)

	if stat == pelada.StatAll {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value(stat) > out[j].Value(stat)
	})

	if !onlyNonZero {
		return out
	}
	filtered := out[:0]
	for _, s := range out {
		if s.Value(stat) > 0 {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
