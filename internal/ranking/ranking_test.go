package ranking

import (
	"testing"

	"github.com/sicksfc/peladeiro/internal/pelada"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlayers() []pelada.Player {
	return []pelada.Player{
		{ID: 1, Name: "Ana", Goals: 5, Assists: 2, MatchesPlayed: 10},
		{ID: 2, Name: "Bia", Goals: 8, Assists: 2, MatchesPlayed: 12},
		{ID: 3, Name: "Cau", Goals: 8, Assists: 7, MatchesPlayed: 9},
		{ID: 4, Name: "Vinícius", Goals: 3, Assists: 1, MatchesPlayed: 15},
	}
}

func TestRank(t *testing.T) {
	t.Run("sorts descending by the selected statistic", func(t *testing.T) {
		entries := Rank(testPlayers(), pelada.StatGoals, "")
		require.Len(t, entries, 4)

		assert.Equal(t, "Bia", entries[0].Player.Name)
		assert.Equal(t, 8, entries[0].Value)
		assert.Equal(t, "Cau", entries[1].Player.Name)
		assert.Equal(t, "Ana", entries[2].Player.Name)
		assert.Equal(t, "Vinícius", entries[3].Player.Name)
	})

	t.Run("ties keep the input order", func(t *testing.T) {
		// Bia and Cau both have 8 goals; Bia comes first in the catalog.
		entries := Rank(testPlayers(), pelada.StatGoals, "")
		assert.Equal(t, "Bia", entries[0].Player.Name)
		assert.Equal(t, "Cau", entries[1].Player.Name)

		// Assists: Ana and Bia tie on 2, Ana first.
		entries = Rank(testPlayers(), pelada.StatAssists, "")
		assert.Equal(t, "Cau", entries[0].Player.Name)
		assert.Equal(t, "Ana", entries[1].Player.Name)
		assert.Equal(t, "Bia", entries[2].Player.Name)
	})

	t.Run("search filter is case-insensitive substring", func(t *testing.T) {
		entries := Rank(testPlayers(), pelada.StatGoals, "vin")
		require.Len(t, entries, 1)
		assert.Equal(t, "Vinícius", entries[0].Player.Name)

		entries = Rank(testPlayers(), pelada.StatGoals, "A")
		require.Len(t, entries, 3)
	})

	t.Run("no match yields an empty sequence", func(t *testing.T) {
		entries := Rank(testPlayers(), pelada.StatGoals, "zzz")
		assert.Empty(t, entries)
	})

	t.Run("default statistic ranks by matches played", func(t *testing.T) {
		entries := Rank(testPlayers(), pelada.StatTotal, "")
		assert.Equal(t, "Vinícius", entries[0].Player.Name)
		assert.Equal(t, 15, entries[0].Value)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		players := testPlayers()
		Rank(players, pelada.StatGoals, "")
		assert.Equal(t, testPlayers(), players)
	})
}

func TestPodium(t *testing.T) {
	entries := Rank(testPlayers(), pelada.StatGoals, "")

	podium := Podium(entries)
	require.Len(t, podium, 3)
	assert.Equal(t, entries[:3], podium)

	short := entries[:2]
	assert.Equal(t, short, Podium(short))
	assert.Empty(t, Podium(nil))
}

func TestFilterScouts(t *testing.T) {
	scouts := []pelada.PlayerScout{
		{PlayerID: 1, DisplayName: "Ana", Goals: 0, Tackles: 4},
		{PlayerID: 2, DisplayName: "Bia", Goals: 3, Tackles: 0},
		{PlayerID: 3, DisplayName: "Cau", Goals: 1, Tackles: 4},
	}

	t.Run("the all sentinel preserves fetch order", func(t *testing.T) {
		out := FilterScouts(scouts, pelada.StatAll, false)
		require.Len(t, out, 3)
		assert.Equal(t, scouts, out)

		// onlyNonZero is ignored for "all".
		out = FilterScouts(scouts, pelada.StatAll, true)
		assert.Equal(t, scouts, out)
	})

	t.Run("a concrete statistic sorts descending", func(t *testing.T) {
		out := FilterScouts(scouts, pelada.StatGoals, false)
		require.Len(t, out, 3)
		assert.Equal(t, "Bia", out[0].DisplayName)
		assert.Equal(t, "Cau", out[1].DisplayName)
		assert.Equal(t, "Ana", out[2].DisplayName)
	})

	t.Run("ties keep the fetch order", func(t *testing.T) {
		out := FilterScouts(scouts, pelada.StatTackles, false)
		assert.Equal(t, "Ana", out[0].DisplayName)
		assert.Equal(t, "Cau", out[1].DisplayName)
	})

	t.Run("onlyNonZero drops zero-valued rows", func(t *testing.T) {
		out := FilterScouts(scouts, pelada.StatGoals, true)
		require.Len(t, out, 2)
		assert.Equal(t, "Bia", out[0].DisplayName)
		assert.Equal(t, "Cau", out[1].DisplayName)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		FilterScouts(scouts, pelada.StatGoals, true)
		assert.Equal(t, "Ana", scouts[0].DisplayName)
		assert.Equal(t, 0, scouts[0].Goals)
	})
}
