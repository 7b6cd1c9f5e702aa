package roster

import (
	"testing"

	"github.com/sicksfc/peladeiro/internal/pelada"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []pelada.Player {
	return []pelada.Player{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Bia"},
		{ID: 3, Name: "Cau"},
	}
}

func TestAddRow(t *testing.T) {
	t.Run("defaults to the first catalog player", func(t *testing.T) {
		editor := NewEditor(&pelada.Match{}, testCatalog())

		require.NoError(t, editor.AddRow())
		require.Len(t, editor.Match().Roster, 1)
		assert.Equal(t, int64(1), editor.Match().Roster[0].PlayerID)
		assert.Equal(t, "Ana", editor.Match().Roster[0].DisplayName)
	})

	t.Run("skips players already in the roster", func(t *testing.T) {
		editor := NewEditor(&pelada.Match{}, testCatalog())

		require.NoError(t, editor.AddRow())
		require.NoError(t, editor.AddRow())
		assert.Equal(t, int64(2), editor.Match().Roster[1].PlayerID)
	})

	t.Run("fails once every player is taken", func(t *testing.T) {
		editor := NewEditor(&pelada.Match{}, testCatalog())

		for range testCatalog() {
			require.NoError(t, editor.AddRow())
		}
		err := editor.AddRow()
		assert.ErrorIs(t, err, ErrRosterExhausted)
		assert.Len(t, editor.Match().Roster, 3)
	})

	t.Run("fails immediately with an empty catalog", func(t *testing.T) {
		editor := NewEditor(&pelada.Match{}, nil)
		assert.ErrorIs(t, editor.AddRow(), ErrRosterExhausted)
	})
}

func TestSelectPlayer(t *testing.T) {
	t.Run("updates the id and the cached name", func(t *testing.T) {
		editor := NewEditor(&pelada.Match{}, testCatalog())
		require.NoError(t, editor.AddRow())

		require.NoError(t, editor.SelectPlayer(0, 3))
		assert.Equal(t, int64(3), editor.Match().Roster[0].PlayerID)
		assert.Equal(t, "Cau", editor.Match().Roster[0].DisplayName)
	})

	t.Run("keeps the previous selection when the player is taken", func(t *testing.T) {
		editor := NewEditor(&pelada.Match{}, testCatalog())
		require.NoError(t, editor.AddRow())
		require.NoError(t, editor.AddRow())

		err := editor.SelectPlayer(1, 1)
		assert.ErrorIs(t, err, ErrPlayerAlreadySelected)
		assert.Equal(t, int64(2), editor.Match().Roster[1].PlayerID)
		assert.Equal(t, "Bia", editor.Match().Roster[1].DisplayName)
	})

	t.Run("reselecting the row's own player is a no-op", func(t *testing.T) {
		editor := NewEditor(&pelada.Match{}, testCatalog())
		require.NoError(t, editor.AddRow())

		require.NoError(t, editor.SelectPlayer(0, 1))
		assert.Equal(t, int64(1), editor.Match().Roster[0].PlayerID)
	})

	t.Run("rejects unknown rows and players", func(t *testing.T) {
		editor := NewEditor(&pelada.Match{}, testCatalog())
		require.NoError(t, editor.AddRow())

		assert.ErrorIs(t, editor.SelectPlayer(5, 1), ErrNoSuchRow)
		assert.ErrorIs(t, editor.SelectPlayer(-1, 1), ErrNoSuchRow)
		assert.ErrorIs(t, editor.SelectPlayer(0, 42), ErrUnknownPlayer)
	})
}

func TestRemoveRow(t *testing.T) {
	editor := NewEditor(&pelada.Match{}, testCatalog())
	require.NoError(t, editor.AddRow())
	require.NoError(t, editor.AddRow())

	require.NoError(t, editor.RemoveRow(0))
	require.Len(t, editor.Match().Roster, 1)
	assert.Equal(t, int64(2), editor.Match().Roster[0].PlayerID)

	// The freed player becomes available again.
	require.NoError(t, editor.AddRow())
	assert.Equal(t, int64(1), editor.Match().Roster[1].PlayerID)

	assert.ErrorIs(t, editor.RemoveRow(9), ErrNoSuchRow)
}

func TestOptions(t *testing.T) {
	editor := NewEditor(&pelada.Match{}, testCatalog())
	require.NoError(t, editor.AddRow())
	require.NoError(t, editor.AddRow())

	options := editor.Options(1)
	require.Len(t, options, 3)

	// Ana is taken by row 0, so she is disabled for row 1.
	assert.Equal(t, "Ana", options[0].Player.Name)
	assert.True(t, options[0].Disabled)
	// Bia is row 1's own selection and stays enabled.
	assert.Equal(t, "Bia", options[1].Player.Name)
	assert.False(t, options[1].Disabled)
	// Cau is free.
	assert.False(t, options[2].Disabled)
}
