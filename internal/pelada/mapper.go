package pelada

import (
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/sicksfc/peladeiro/internal/api"
)

// FromAPI normalizes a backend match payload into the Match shape. The roster
// is left empty: scout rows are fetched separately per match, on demand, so a
// list view never fans out into one scout request per match.
func FromAPI(raw api.Pelada) Match {
	start, end := splitHorario(raw)

	m := Match{
		ID:             strconv.FormatInt(raw.ID, 10),
		Date:           raw.Data,
		StartTime:      start,
		EndTime:        end,
		Location:       raw.Local,
		RefereePresent: raw.TeveArbitro,
		FieldCost:      sanitizeCost(raw.CustoDoCampo),
		RefereeCost:    sanitizeCost(raw.CustoDoArbitro),
		ExtraCost:      sanitizeCost(raw.CustoAdicional),
		TotalCost:      sanitizeCost(raw.CustoTotal),
		Comments:       raw.Comentarios,
	}
	return m
}

// splitHorario handles the two shapes the backend returns for clock times: a
// combined "18:00 - 19:30" string, or separate start/end fields. A combined
// string without a separator is all start time.
func splitHorario(raw api.Pelada) (start, end string) {
	if raw.Horario == "" {
		return raw.HorarioInicio, raw.HorarioFim
	}
	if before, after, found := strings.Cut(raw.Horario, "-"); found {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	return strings.TrimSpace(raw.Horario), ""
}

// PlayerFromAPI maps a catalog entry into the Player shape.
func PlayerFromAPI(raw api.Jogador) Player {
	return Player{
		ID:            raw.ID,
		Name:          raw.Nome,
		Goals:         raw.TotalGols,
		Assists:       raw.TotalAssistencias,
		Tackles:       raw.TotalDesarmes,
		Saves:         raw.TotalDefesasDificeis,
		Fouls:         raw.TotalFaltas,
		MatchesPlayed: raw.TotalPartidas,
	}
}

// RosterFromScouts maps per-match scout rows into roster rows, resolving
// display names from the catalog. An id missing from the catalog leaves the
// name empty; the id stays authoritative.
func RosterFromScouts(scouts []api.PeladaScout, catalog []Player) []PlayerScout {
	names := make(map[int64]string, len(catalog))
	for _, p := range catalog {
		names[p.ID] = p.Name
	}

	roster := make([]PlayerScout, 0, len(scouts))
	for _, s := range scouts {
		roster = append(roster, PlayerScout{
			PlayerID:    s.JogadorID,
			DisplayName: names[s.JogadorID],
			Goals:       s.Gols,
			Assists:     s.Assistencias,
			Tackles:     s.Desarmes,
			Saves:       s.DefesasDificeis,
			Fouls:       s.Faltas,
		})
	}
	return roster
}

// ToPayload builds the outbound write shape for the match. Callers are
// expected to have validated the roster and recomputed the total first.
func (m *Match) ToPayload() api.PeladaPayload {
	payload := api.PeladaPayload{
		Data:           m.Date,
		HorarioInicio:  optional(m.StartTime),
		HorarioFim:     optional(m.EndTime),
		Local:          m.Location,
		TeveArbitro:    m.RefereePresent,
		Comentarios:    optional(m.Comments),
		CustoDoCampo:   m.FieldCost,
		CustoDoArbitro: m.RefereeCost,
		CustoAdicional: m.ExtraCost,
		Jogadores:      make([]api.ScoutPayload, 0, len(m.Roster)),
	}
	for _, s := range m.Roster {
		payload.Jogadores = append(payload.Jogadores, api.ScoutPayload{
			JogadorID:       s.PlayerID,
			Gols:            s.Goals,
			Assistencias:    s.Assists,
			Desarmes:        s.Tackles,
			DefesasDificeis: s.Saves,
			Faltas:          s.Fouls,
		})
	}
	return payload
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NewDraft creates an unsaved match with default values: today's date, no
// roster, zero costs. The backend assigns the identifier on submission.
func NewDraft(clock clockwork.Clock) *Match {
	return &Match{
		Date:   clock.Now().Format("2006-01-02"),
		Roster: []PlayerScout{},
	}
}
