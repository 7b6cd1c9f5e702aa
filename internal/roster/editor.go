package roster

import "github.com/sicksfc/peladeiro/internal/pelada"

// Editor is the complete mutation surface for one match's roster. It is owned
// by a single editing flow; no other code path mutates roster rows directly.
// The catalog is the backend-owned player list fetched by the owning view.
type Editor struct {
	match   *pelada.Match
	catalog []pelada.Player
}

// NewEditor wraps a match and the player catalog it is being edited against.
func NewEditor(match *pelada.Match, catalog []pelada.Player) *Editor {
	return &Editor{match: match, catalog: catalog}
}

// Match returns the match being edited.
func (e *Editor) Match() *pelada.Match {
	return e.match
}

// Option is a catalog entry as presented by a roster row's selector.
// Disabled options are players already taken by other rows.
type Option struct {
	Player   pelada.Player
	Disabled bool
}

// AddRow appends a new roster row defaulting to the first catalog player not
// already present. When every catalog player is taken it fails with
// ErrRosterExhausted and performs no mutation.
func (e *Editor) AddRow() error {
	taken := e.selectedIDs(-1)
	for _, p := range e.catalog {
		if _, ok := taken[p.ID]; ok {
			continue
		}
		e.match.Roster = append(e.match.Roster, pelada.PlayerScout{
			PlayerID:    p.ID,
			DisplayName: p.Name,
		})
		return nil
	}
	return ErrRosterExhausted
}

// SelectPlayer changes a row's player selection. Picking an id already used
// by another row fails with ErrPlayerAlreadySelected and leaves the row's
// previous selection unchanged; otherwise both the id and the cached display
// name are updated from the catalog.
func (e *Editor) SelectPlayer(row int, playerID int64) error {
	if row < 0 || row >= len(e.match.Roster) {
		return ErrNoSuchRow
	}

	var player *pelada.Player
	for i := range e.catalog {
		if e.catalog[i].ID == playerID {
			player = &e.catalog[i]
			break
		}
	}
	if player == nil {
		return ErrUnknownPlayer
	}

	if _, ok := e.selectedIDs(row)[playerID]; ok {
		return ErrPlayerAlreadySelected
	}

	e.match.Roster[row].PlayerID = player.ID
	e.match.Roster[row].DisplayName = player.Name
	return nil
}

// RemoveRow deletes the row from the roster sequence with no other side
// effects.
func (e *Editor) RemoveRow(row int) error {
	if row < 0 || row >= len(e.match.Roster) {
		return ErrNoSuchRow
	}
	e.match.Roster = append(e.match.Roster[:row], e.match.Roster[row+1:]...)
	return nil
}

// Options lists the catalog for a row's selector. Players used by other rows
// are disabled; the row's own current selection stays enabled.
func (e *Editor) Options(row int) []Option {
	taken := e.selectedIDs(row)
	options := make([]Option, 0, len(e.catalog))
	for _, p := range e.catalog {
		_, disabled := taken[p.ID]
		options = append(options, Option{Player: p, Disabled: disabled})
	}
	return options
}

// selectedIDs collects the player ids assigned to rows other than skipRow.
// Pass -1 to include every row.
func (e *Editor) selectedIDs(skipRow int) map[int64]struct{} {
	ids := make(map[int64]struct{}, len(e.match.Roster))
	for i, row := range e.match.Roster {
		if i == skipRow || !row.Assigned() {
			continue
		}
		ids[row.PlayerID] = struct{}{}
	}
	return ids
}
