package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sicksfc/peladeiro/internal/api"
	"github.com/sicksfc/peladeiro/internal/pelada"
	"github.com/sicksfc/peladeiro/internal/ranking"
	"github.com/sicksfc/peladeiro/internal/roster"
	"github.com/slack-go/slack"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// RankingsHandler serves the leaderboard view: the catalog ranked by the
// selected statistic, optionally filtered by a name search term.
func (s *Server) RankingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		stat := pelada.Statistic(r.URL.Query().Get("stat"))
		if stat == "" {
			stat = pelada.StatTotal
		}
		if !stat.ValidForRanking() {
			respondDetail(w, http.StatusBadRequest, fmt.Sprintf("unknown statistic: %s", stat))
			return
		}
		search := r.URL.Query().Get("search")

		players, err := s.fetchCatalog()
		if err != nil {
			s.backendError(w, err, "Failed to fetch player catalog")
			return
		}

		entries := ranking.Rank(players, stat, search)
		resp := rankingsResponse{
			Statistic: stat,
			Search:    search,
			Entries:   entries,
			Podium:    ranking.Podium(entries),
		}
		s.Metrics.ObserveViewDuration(time.Since(start).Seconds())
		respondJSON(w, resp)
	}
}

// ListMembersHandler serves the raw player catalog.
func (s *Server) ListMembersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.fetchCatalog()
		if err != nil {
			s.backendError(w, err, "Failed to fetch player catalog")
			return
		}
		respondJSON(w, players)
	}
}

// MatchesHandler dispatches on method: GET lists normalized matches, POST
// validates and forwards a new match, DELETE removes one by id.
func (s *Server) MatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			s.listMatches(w, r)
		case http.MethodPost:
			s.createMatch(w, r)
		case http.MethodDelete:
			s.deleteMatch(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (s *Server) listMatches(w http.ResponseWriter, r *http.Request) {
	s.Metrics.IncBackendRequests()
	peladas, err := s.Backend.ListPeladas()
	if err != nil {
		s.Metrics.IncBackendErrors()
		s.backendError(w, err, "Failed to fetch matches")
		return
	}

	// Rosters stay empty here: scouts are fetched per match on demand via
	// /matches/scouts, never eagerly for the whole list.
	matches := make([]pelada.Match, 0, len(peladas))
	for _, p := range peladas {
		matches = append(matches, pelada.FromAPI(p))
	}
	respondJSON(w, matches)
}

func (s *Server) createMatch(w http.ResponseWriter, r *http.Request) {
	var match pelada.Match
	if err := json.NewDecoder(r.Body).Decode(&match); err != nil {
		log.Error("Failed to decode match body", "error", err)
		respondDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Local validation short-circuits the pipeline; nothing reaches the
	// backend and the submitted state is reported back untouched.
	if err := roster.Validate(&match); err != nil {
		s.Metrics.IncValidationFailures()
		log.Warn("Match submission rejected", "error", err)
		respondDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.Metrics.IncBackendRequests()
	created, err := s.Backend.CreatePelada(match.ToPayload())
	if err != nil {
		s.Metrics.IncBackendErrors()
		s.backendError(w, err, "Failed to save match")
		return
	}
	match.ID = strconv.FormatInt(created.ID, 10)

	if s.Notifier != nil {
		if err := s.Notifier.SendMatchRecorded(&match, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to announce recorded match", "error", err, "matchID", match.ID)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(match); err != nil {
		log.Error("Failed to encode created match", "error", err)
	}
}

func (s *Server) deleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid or missing match id")
		return
	}

	s.Metrics.IncBackendRequests()
	if err := s.Backend.DeletePelada(id); err != nil {
		s.Metrics.IncBackendErrors()
		s.backendError(w, err, "Failed to delete match")
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Match %d deleted.", id)
}

// MatchScoutsHandler serves one match's scout view, sorted/filtered by the
// selected statistic and the only_nonzero toggle.
func (s *Server) MatchScoutsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			respondDetail(w, http.StatusBadRequest, "invalid or missing match id")
			return
		}

		stat := pelada.Statistic(r.URL.Query().Get("stat"))
		if stat == "" {
			stat = pelada.StatAll
		}
		if !stat.ValidForScouts() {
			respondDetail(w, http.StatusBadRequest, fmt.Sprintf("unknown statistic: %s", stat))
			return
		}
		onlyNonZero := r.URL.Query().Get("only_nonzero") == "true"

		s.Metrics.IncBackendRequests()
		scouts, err := s.Backend.ScoutsByPelada(id)
		if err != nil {
			s.Metrics.IncBackendErrors()
			s.backendError(w, err, "Failed to fetch scouts")
			return
		}
		players, err := s.fetchCatalog()
		if err != nil {
			s.backendError(w, err, "Failed to fetch player catalog")
			return
		}

		rows := pelada.RosterFromScouts(scouts, players)
		resp := scoutsResponse{
			MatchID:     strconv.FormatInt(id, 10),
			Statistic:   stat,
			OnlyNonZero: onlyNonZero,
			Scouts:      ranking.FilterScouts(rows, stat, onlyNonZero),
		}
		s.Metrics.ObserveViewDuration(time.Since(start).Seconds())
		respondJSON(w, resp)
	}
}

// LeaderboardCommandHandler returns a handler for the /leaderboard Slack command.
// The command text selects the statistic, defaulting to matches played.
func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		stat := pelada.Statistic(r.FormValue("text"))
		if stat == "" {
			stat = pelada.StatTotal
		}
		if !stat.ValidForRanking() {
			respondDetail(w, http.StatusBadRequest, fmt.Sprintf("unknown statistic: %s", stat))
			return
		}

		players, err := s.fetchCatalog()
		if err != nil {
			s.backendError(w, err, "Failed to fetch player catalog")
			return
		}

		msg, err := s.Notifier.FormatLeaderboardResponse(ranking.Rank(players, stat, ""), stat)
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondJSON(w, slackMsg)
	}
}

// fetchCatalog retrieves the player catalog and maps it into the core shape.
func (s *Server) fetchCatalog() ([]pelada.Player, error) {
	s.Metrics.IncBackendRequests()
	jogadores, err := s.Backend.ListJogadores()
	if err != nil {
		s.Metrics.IncBackendErrors()
		return nil, err
	}
	players := make([]pelada.Player, 0, len(jogadores))
	for _, j := range jogadores {
		players = append(players, pelada.PlayerFromAPI(j))
	}
	return players, nil
}

// backendError reports a failed backend call. The backend's own status and
// detail message pass through when present; anything else is a generic
// bad-gateway response.
func (s *Server) backendError(w http.ResponseWriter, err error, logMsg string) {
	log.Error(logMsg, "error", err)

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		respondDetail(w, apiErr.StatusCode, apiErr.Detail)
		return
	}
	respondDetail(w, http.StatusBadGateway, "backend unavailable")
}

func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func respondDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(detailResponse{Detail: detail}); err != nil {
		log.Error("Failed to write error response", "error", err)
	}
}
