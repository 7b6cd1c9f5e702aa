package notifier

import (
	"github.com/sicksfc/peladeiro/internal/pelada"
	"github.com/sicksfc/peladeiro/internal/ranking"
)

// Notifier defines a high-level interface for announcing club events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For newly recorded matches
	SendMatchRecorded(match *pelada.Match, dryRun bool) error
	// For leaderboards pushed to the club channel
	SendLeaderboard(entries []ranking.Entry, stat pelada.Statistic, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(entries []ranking.Entry, stat pelada.Statistic) (any, error)
}
