package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/sicksfc/peladeiro/internal/api"
	"github.com/sicksfc/peladeiro/internal/pelada"
	"github.com/sicksfc/peladeiro/internal/ranking"
	"github.com/sicksfc/peladeiro/internal/roster"
	"github.com/spf13/cobra"
)

var (
	searchTerm  string
	onlyNonZero bool

	matchDate     string
	matchStart    string
	matchEnd      string
	matchLocation string
	matchReferee  bool
	fieldCost     float64
	refereeCost   float64
	extraCost     float64
	matchComments string
	playerSpecs   []string
)

func init() {
	rankingsCmd.Flags().StringVar(&searchTerm, "search", "", "Only include players whose name contains this term")
	scoutsCmd.Flags().BoolVar(&onlyNonZero, "only-nonzero", false, "Drop rows with a zero value for the selected statistic")

	newMatchCmd.Flags().StringVar(&matchDate, "date", "", "Match date (YYYY-MM-DD, defaults to today)")
	newMatchCmd.Flags().StringVar(&matchStart, "start", "", "Start time (HH:MM)")
	newMatchCmd.Flags().StringVar(&matchEnd, "end", "", "End time (HH:MM)")
	newMatchCmd.Flags().StringVar(&matchLocation, "location", "", "Where the pelada was played")
	newMatchCmd.Flags().BoolVar(&matchReferee, "referee", false, "Whether a referee was present")
	newMatchCmd.Flags().Float64Var(&fieldCost, "field-cost", 0, "Field rental cost")
	newMatchCmd.Flags().Float64Var(&refereeCost, "referee-cost", 0, "Referee cost")
	newMatchCmd.Flags().Float64Var(&extraCost, "extra-cost", 0, "Any additional cost")
	newMatchCmd.Flags().StringVar(&matchComments, "comments", "", "Free-form comments")
	newMatchCmd.Flags().StringArrayVar(&playerSpecs, "player", nil,
		"Roster row as id:goals,assists,tackles,saves,fouls (repeatable; counters optional)")

	editMatchCmd.Flags().StringVar(&matchLocation, "location", "", "New location (empty keeps the current one)")
	editMatchCmd.Flags().StringVar(&matchComments, "comments", "", "New comments (empty keeps the current ones)")
	editMatchCmd.Flags().StringArrayVar(&playerSpecs, "player", nil,
		"Replacement roster row as id:goals,assists,tackles,saves,fouls (repeatable; omit to keep the roster)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(scoutsCmd)
	rootCmd.AddCommand(newMatchCmd)
	rootCmd.AddCommand(editMatchCmd)
	rootCmd.AddCommand(deleteMatchCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(addPlayerCmd)
	rootCmd.AddCommand(renamePlayerCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Authenticate against the backend and store the token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, sess := newClient()
		if _, err := client.Login(args[0], args[1]); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		if err := sess.Save(); err != nil {
			return err
		}
		fmt.Println("Logged in.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Invalidate the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _ := newClient()
		if err := client.Logout(); err != nil {
			// The local token is gone either way; report and move on.
			fmt.Printf("Backend logout failed: %s\n", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Check whether the stored token is still valid",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, sess := newClient()
		if !sess.Authenticated() {
			fmt.Println("Not logged in.")
			return nil
		}
		if err := client.Me(); err != nil {
			return fmt.Errorf("token rejected: %w", err)
		}
		fmt.Println("Token is valid.")
		return nil
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings [statistic]",
	Short: "Show the leaderboard for a statistic (default: matches played)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stat := pelada.StatTotal
		if len(args) == 1 {
			stat = pelada.Statistic(args[0])
		}
		if !stat.ValidForRanking() {
			return fmt.Errorf("unknown statistic %q", stat)
		}

		players, err := fetchCatalog()
		if err != nil {
			return err
		}

		entries := ranking.Rank(players, stat, searchTerm)
		if len(entries) == 0 {
			fmt.Println("No players found.")
			return nil
		}
		for i, entry := range entries {
			marker := "  "
			if i < ranking.PodiumSize {
				marker = "🏅"
			}
			fmt.Printf("%s %2d. %-25s %d\n", marker, i+1, entry.Player.Name, entry.Value)
		}
		return nil
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the recorded peladas",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _ := newClient()
		peladas, err := client.ListPeladas()
		if err != nil {
			return err
		}
		if len(peladas) == 0 {
			fmt.Println("No matches recorded yet.")
			return nil
		}
		for _, p := range peladas {
			m := pelada.FromAPI(p)
			horario := m.StartTime
			if m.EndTime != "" {
				horario = m.StartTime + " - " + m.EndTime
			}
			fmt.Printf("#%s  %s  %-13s %-20s R$ %.2f\n", m.ID, m.Date, horario, m.Location, m.TotalCost)
		}
		return nil
	},
}

var scoutsCmd = &cobra.Command{
	Use:   "scouts <match-id> [statistic]",
	Short: "Show one match's scout rows, optionally sorted by a statistic",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid match id %q", args[0])
		}
		stat := pelada.StatAll
		if len(args) == 2 {
			stat = pelada.Statistic(args[1])
		}
		if !stat.ValidForScouts() {
			return fmt.Errorf("unknown statistic %q", stat)
		}

		client, _ := newClient()
		scouts, err := client.ScoutsByPelada(id)
		if err != nil {
			return err
		}
		players, err := fetchCatalog()
		if err != nil {
			return err
		}

		rows := ranking.FilterScouts(pelada.RosterFromScouts(scouts, players), stat, onlyNonZero)
		if len(rows) == 0 {
			fmt.Println("No scouts for the selected filter.")
			return nil
		}
		fmt.Printf("%-25s %5s %7s %8s %6s %6s\n", "Player", "Goals", "Assists", "Tackles", "Saves", "Fouls")
		for _, row := range rows {
			name := row.DisplayName
			if name == "" {
				name = fmt.Sprintf("Player #%d", row.PlayerID)
			}
			fmt.Printf("%-25s %5d %7d %8d %6d %6d\n", name, row.Goals, row.Assists, row.Tackles, row.Saves, row.Fouls)
		}
		return nil
	},
}

var newMatchCmd = &cobra.Command{
	Use:   "new-match",
	Short: "Record a new pelada",
	Long: `Builds a match draft, fills the roster from the repeated --player flags
and submits it once local validation passes. Validation failures never reach
the backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _ := newClient()
		players, err := fetchCatalog()
		if err != nil {
			return err
		}

		match := pelada.NewDraft(clockwork.NewRealClock())
		if matchDate != "" {
			match.Date = matchDate
		}
		match.StartTime = matchStart
		match.EndTime = matchEnd
		match.Location = matchLocation
		match.RefereePresent = matchReferee
		match.FieldCost = fieldCost
		match.RefereeCost = refereeCost
		match.ExtraCost = extraCost
		match.Comments = matchComments

		editor := roster.NewEditor(match, players)
		for _, spec := range playerSpecs {
			if err := applyPlayerSpec(editor, spec); err != nil {
				return err
			}
		}

		if err := roster.Validate(match); err != nil {
			return fmt.Errorf("match not submitted: %w", err)
		}

		created, err := client.CreatePelada(match.ToPayload())
		if err != nil {
			return err
		}
		fmt.Printf("Match recorded with id %d (total cost R$ %.2f).\n", created.ID, match.TotalCost)
		return nil
	},
}

var editMatchCmd = &cobra.Command{
	Use:   "edit-match <match-id>",
	Short: "Edit a recorded pelada",
	Long: `Re-fetches the match and its scout rows from the backend, applies the
given changes and submits the whole record back once validation passes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid match id %q", args[0])
		}

		client, _ := newClient()
		peladas, err := client.ListPeladas()
		if err != nil {
			return err
		}
		var match *pelada.Match
		for _, p := range peladas {
			if p.ID == id {
				m := pelada.FromAPI(p)
				match = &m
				break
			}
		}
		if match == nil {
			return fmt.Errorf("no match with id %d", id)
		}

		players, err := fetchCatalog()
		if err != nil {
			return err
		}
		scouts, err := client.ScoutsByPelada(id)
		if err != nil {
			return err
		}
		match.Roster = pelada.RosterFromScouts(scouts, players)

		if matchLocation != "" {
			match.Location = matchLocation
		}
		if matchComments != "" {
			match.Comments = matchComments
		}
		if len(playerSpecs) > 0 {
			match.Roster = match.Roster[:0]
			editor := roster.NewEditor(match, players)
			for _, spec := range playerSpecs {
				if err := applyPlayerSpec(editor, spec); err != nil {
					return err
				}
			}
		}

		if err := roster.Validate(match); err != nil {
			return fmt.Errorf("match not submitted: %w", err)
		}
		if err := client.UpdatePelada(id, match.ToPayload()); err != nil {
			return err
		}
		fmt.Printf("Match %d updated (total cost R$ %.2f).\n", id, match.TotalCost)
		return nil
	},
}

var deleteMatchCmd = &cobra.Command{
	Use:   "delete-match <match-id>",
	Short: "Delete a recorded pelada",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid match id %q", args[0])
		}
		client, _ := newClient()
		if err := client.DeletePelada(id); err != nil {
			return err
		}
		fmt.Printf("Match %d deleted.\n", id)
		return nil
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the player catalog with career totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		players, err := fetchCatalog()
		if err != nil {
			return err
		}
		fmt.Printf("%-4s %-25s %5s %7s %8s %6s %6s %8s\n", "ID", "Name", "Goals", "Assists", "Tackles", "Saves", "Fouls", "Matches")
		for _, p := range players {
			fmt.Printf("%-4d %-25s %5d %7d %8d %6d %6d %8d\n", p.ID, p.Name, p.Goals, p.Assists, p.Tackles, p.Saves, p.Fouls, p.MatchesPlayed)
		}
		return nil
	},
}

var addPlayerCmd = &cobra.Command{
	Use:   "add-player <name>",
	Short: "Add a player to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _ := newClient()
		created, err := client.CreateJogador(api.JogadorPayload{Nome: args[0]})
		if err != nil {
			return err
		}
		fmt.Printf("Player %q added with id %d.\n", created.Nome, created.ID)
		return nil
	},
}

var renamePlayerCmd = &cobra.Command{
	Use:   "rename-player <player-id> <name>",
	Short: "Rename a catalog player, keeping their career totals",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid player id %q", args[0])
		}
		client, _ := newClient()
		jogadores, err := client.ListJogadores()
		if err != nil {
			return err
		}
		for _, j := range jogadores {
			if j.ID != id {
				continue
			}
			payload := api.JogadorPayload{
				Nome:                 args[1],
				TotalGols:            j.TotalGols,
				TotalAssistencias:    j.TotalAssistencias,
				TotalDesarmes:        j.TotalDesarmes,
				TotalDefesasDificeis: j.TotalDefesasDificeis,
				TotalFaltas:          j.TotalFaltas,
				TotalPartidas:        j.TotalPartidas,
			}
			if _, err := client.UpdateJogador(id, payload); err != nil {
				return err
			}
			fmt.Printf("Player %d renamed to %q.\n", id, args[1])
			return nil
		}
		return fmt.Errorf("no player with id %d", id)
	},
}

// fetchCatalog pulls the player catalog mapped into the core shape.
func fetchCatalog() ([]pelada.Player, error) {
	client, _ := newClient()
	jogadores, err := client.ListJogadores()
	if err != nil {
		return nil, err
	}
	players := make([]pelada.Player, 0, len(jogadores))
	for _, j := range jogadores {
		players = append(players, pelada.PlayerFromAPI(j))
	}
	return players, nil
}

// applyPlayerSpec appends one roster row from an "id:g,a,t,s,f" flag value.
// The row goes through the editor so duplicate selections fail the same way
// they do interactively.
func applyPlayerSpec(editor *roster.Editor, spec string) error {
	idPart, counterPart, _ := strings.Cut(spec, ":")
	id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid player spec %q: bad player id", spec)
	}

	if err := editor.AddRow(); err != nil {
		return err
	}
	row := len(editor.Match().Roster) - 1
	if err := editor.SelectPlayer(row, id); err != nil {
		// Roll the fresh row back so a failed spec leaves no half-built state.
		_ = editor.RemoveRow(row)
		return fmt.Errorf("player %d: %w", id, err)
	}

	if counterPart == "" {
		return nil
	}
	counters := strings.Split(counterPart, ",")
	if len(counters) > 5 {
		return fmt.Errorf("invalid player spec %q: too many counters", spec)
	}
	scout := &editor.Match().Roster[row]
	targets := []*int{&scout.Goals, &scout.Assists, &scout.Tackles, &scout.Saves, &scout.Fouls}
	for i, raw := range counters {
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || value < 0 {
			return fmt.Errorf("invalid player spec %q: bad counter %q", spec, raw)
		}
		*targets[i] = value
	}
	return nil
}
