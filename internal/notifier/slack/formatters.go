package slack

import (
	"fmt"
	"strings"

	"github.com/sicksfc/peladeiro/internal/pelada"
	"github.com/sicksfc/peladeiro/internal/ranking"
	"github.com/slack-go/slack"
)

// statLabels are the user-facing names the club uses for each statistic.
var statLabels = map[pelada.Statistic]string{
	pelada.StatGoals:   "Gols",
	pelada.StatAssists: "Assistências",
	pelada.StatTackles: "Desarmes",
	pelada.StatSaves:   "Defesas Difíceis",
	pelada.StatFouls:   "Faltas",
	pelada.StatTotal:   "Partidas",
}

// formatMatchRecorded creates the Slack message for a newly recorded pelada using Block Kit.
func (s *Notifier) formatMatchRecorded(match *pelada.Match) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚽ Pelada registrada! ⚽", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	details := fmt.Sprintf("Data: %s", match.Date)
	if match.StartTime != "" && match.EndTime != "" {
		details += fmt.Sprintf("\nHorário: %s - %s", match.StartTime, match.EndTime)
	} else if match.StartTime != "" {
		details += fmt.Sprintf("\nHorário: %s", match.StartTime)
	}
	if match.Location != "" {
		details += fmt.Sprintf("\nLocal: %s", match.Location)
	}
	details += fmt.Sprintf("\nCusto total: R$ %.2f", match.TotalCost)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", details, true, false), nil, nil))

	// Players, with scorers called out.
	var playerLines []string
	for _, row := range match.Roster {
		if row.DisplayName == "" {
			continue
		}
		line := fmt.Sprintf("• %s", row.DisplayName)
		if row.Goals > 0 {
			line += fmt.Sprintf(" (%d gol(s))", row.Goals)
		}
		playerLines = append(playerLines, line)
	}
	if len(playerLines) > 0 {
		playersText := "Jogadores:\n" + strings.Join(playerLines, "\n")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playersText, true, false), nil, nil))
	}

	var contextElements []slack.MixedElement
	if match.RefereePresent {
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", "🟨 Com árbitro", true, false))
	}
	if match.Comments != "" {
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", match.Comments, true, false))
	}
	if len(contextElements) > 0 {
		blocks = append(blocks, slack.NewContextBlock("", contextElements...))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates the Slack message for a ranked leaderboard using Block Kit.
func (s *Notifier) formatLeaderboard(entries []ranking.Entry, stat pelada.Statistic) slack.Message {
	blocks := make([]slack.Block, 0)

	label := statLabels[stat]
	if label == "" {
		label = string(stat)
	}
	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 Ranking — %s 🏆", label), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(entries) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "Nenhum jogador encontrado.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	medals := []string{"🥇", "🥈", "🥉"}
	var lines []string
	for i, entry := range entries {
		prefix := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			prefix = medals[i]
		}
		lines = append(lines, fmt.Sprintf("%s %s — %d", prefix, entry.Player.Name, entry.Value))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
