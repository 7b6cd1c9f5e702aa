// Package roster gates match submissions and owns all roster mutation.
package roster

import (
	"errors"

	"github.com/sicksfc/peladeiro/internal/pelada"
)

// Validation failures are detected locally, surfaced to the user immediately
// and never sent to the backend.
var (
	ErrMissingDate           = errors.New("match date is required")
	ErrInsufficientPlayers   = errors.New("roster needs at least 2 players")
	ErrDuplicatePlayer       = errors.New("roster references the same player twice")
	ErrUnassignedRow         = errors.New("roster row has no player selected")
	ErrRosterExhausted       = errors.New("every catalog player is already in the roster")
	ErrPlayerAlreadySelected = errors.New("player is already selected by another row")
	ErrNoSuchRow             = errors.New("roster row does not exist")
	ErrUnknownPlayer         = errors.New("player is not in the catalog")
)

// MinPlayers is the smallest roster the backend will be asked to accept.
const MinPlayers = 2

// Validate gates a create/update submission. On success it recomputes the
// match's total cost so the outbound payload carries the derived value; on
// failure the match is left untouched and the error names the first problem
// found, checked in the order the original form reported them.
func Validate(m *pelada.Match) error {
	if m.Date == "" {
		return ErrMissingDate
	}
	if len(m.Roster) < MinPlayers {
		return ErrInsufficientPlayers
	}

	seen := make(map[int64]struct{}, len(m.Roster))
	for _, row := range m.Roster {
		if !row.Assigned() {
			// Unassigned rows are never duplicates of each other, but they
			// do fail validation below.
			continue
		}
		if _, ok := seen[row.PlayerID]; ok {
			return ErrDuplicatePlayer
		}
		seen[row.PlayerID] = struct{}{}
	}

	for _, row := range m.Roster {
		if !row.Assigned() {
			return ErrUnassignedRow
		}
	}

	m.RecomputeTotalCost()
	return nil
}
