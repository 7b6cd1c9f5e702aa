package pelada

// Match represents one play session. The ID is assigned by the backend and
// stays empty while the match is a local draft. Clock times and the location
// are free-form and may be absent.
type Match struct {
	ID             string        `json:"id"`
	Date           string        `json:"date"`
	StartTime      string        `json:"start_time"`
	EndTime        string        `json:"end_time"`
	Location       string        `json:"location"`
	RefereePresent bool          `json:"referee_present"`
	FieldCost      float64       `json:"field_cost"`
	RefereeCost    float64       `json:"referee_cost"`
	ExtraCost      float64       `json:"extra_cost"`
	TotalCost      float64       `json:"total_cost"`
	Roster         []PlayerScout `json:"roster"`
	Comments       string        `json:"comments,omitempty"`
}

// PlayerScout is one player's performance line within a match's roster.
// PlayerID is 0 while a freshly added row has no player selected yet.
// DisplayName is a cached copy of the catalog name, kept for display only and
// refreshed from the catalog on every selection change.
type PlayerScout struct {
	PlayerID    int64  `json:"player_id"`
	DisplayName string `json:"display_name"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	Tackles     int    `json:"tackles"`
	Saves       int    `json:"saves"`
	Fouls       int    `json:"fouls"`
}

// Assigned reports whether the row has a player selected.
func (s PlayerScout) Assigned() bool {
	return s.PlayerID != 0
}

// Player is a league member from the backend catalog, carrying the cumulative
// career totals the backend maintains.
type Player struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	Tackles       int    `json:"tackles"`
	Saves         int    `json:"saves"`
	Fouls         int    `json:"fouls"`
	MatchesPlayed int    `json:"matches_played"`
}

// Statistic selects which counter a ranking or scout view is keyed on.
type Statistic string

const (
	StatGoals   Statistic = "goals"
	StatAssists Statistic = "assists"
	StatTackles Statistic = "tackles"
	StatSaves   Statistic = "saves"
	StatFouls   Statistic = "fouls"
	// StatTotal ranks the catalog by cumulative matches played.
	StatTotal Statistic = "total"
	// StatAll is the scout-view sentinel meaning no sort or filter at all.
	StatAll Statistic = "all"
)

// RankStatistics are the statistics the ranking view accepts.
var RankStatistics = []Statistic{StatGoals, StatAssists, StatTackles, StatSaves, StatFouls, StatTotal}

// ScoutStatistics are the statistics the per-match scout view accepts.
var ScoutStatistics = []Statistic{StatAll, StatGoals, StatAssists, StatTackles, StatSaves, StatFouls}

// ValidForRanking reports whether s can key a catalog-wide ranking.
func (s Statistic) ValidForRanking() bool {
	for _, valid := range RankStatistics {
		if s == valid {
			return true
		}
	}
	return false
}

// ValidForScouts reports whether s can key a per-match scout view.
func (s Statistic) ValidForScouts() bool {
	for _, valid := range ScoutStatistics {
		if s == valid {
			return true
		}
	}
	return false
}

// Value returns the player's cumulative total for the statistic. Unknown
// statistics read as 0.
func (p Player) Value(stat Statistic) int {
	switch stat {
	case StatGoals:
		return p.Goals
	case StatAssists:
		return p.Assists
	case StatTackles:
		return p.Tackles
	case StatSaves:
		return p.Saves
	case StatFouls:
		return p.Fouls
	case StatTotal:
		return p.MatchesPlayed
	}
	return 0
}

// Value returns the row's counter for the statistic. Unknown statistics,
// including the "all" sentinel, read as 0.
func (s PlayerScout) Value(stat Statistic) int {
	switch stat {
	case StatGoals:
		return s.Goals
	case StatAssists:
		return s.Assists
	case StatTackles:
		return s.Tackles
	case StatSaves:
		return s.Saves
	case StatFouls:
		return s.Fouls
	}
	return 0
}
