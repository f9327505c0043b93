package entity

import (
	"testing"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}

		assert.True(t, game.IsWaiting())
		assert.False(t, game.IsOver())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsOver())
	})

	t.Run("Won and draw are terminal", func(t *testing.T) {
		won := &Game{Status: StatusWon}
		draw := &Game{Status: StatusDraw}

		assert.True(t, won.IsWon())
		assert.True(t, won.IsOver())
		assert.True(t, draw.IsDraw())
		assert.True(t, draw.IsOver())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return nil error
		assert.NoError(t, err)
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}

		err := game.ConfirmOngoingState()

		assert.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is over", func(t *testing.T) {
		for _, status := range []string{StatusWon, StatusDraw} {
			game := &Game{Status: status}

			err := game.ConfirmOngoingState()

			assert.ErrorIs(t, err, apperror.ErrGameFinished)
		}
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.ErrorIs(t, err, apperror.ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestGame_CellAt(t *testing.T) {
	game := &Game{
		Size: 3,
		Cells: []string{
			"a", EmptyCell, EmptyCell,
			EmptyCell, "b", EmptyCell,
			EmptyCell, EmptyCell, "a",
		},
	}

	assert.Equal(t, "a", game.CellAt(0, 0))
	assert.Equal(t, "b", game.CellAt(1, 1))
	assert.Equal(t, "a", game.CellAt(2, 2))
	assert.Equal(t, EmptyCell, game.CellAt(1, 0))
	assert.Equal(t, EmptyCell, game.CellAt(3, 0))
	assert.Equal(t, EmptyCell, game.CellAt(0, -1))
}

func TestGame_Clone(t *testing.T) {
	// Given: a finished game
	game := &Game{
		ID:          "123",
		Size:        3,
		Cells:       []string{"a", "a", "a", "b", "b", "", "", "", ""},
		Players:     []*Player{{ID: "a", Name: "Alice", Mark: MarkX}, {ID: "b", Name: "Bob", Mark: MarkO}},
		Turn:        "a",
		Winner:      "a",
		WinningLine: []Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
		Status:      StatusWon,
		Moves:       5,
	}

	// When: the clone is modified
	clone := game.Clone()
	require.Equal(t, game, clone)

	clone.Cells[5] = "b"
	clone.Players[1].Name = "Mallory"
	clone.WinningLine[0] = Coord{X: 2, Y: 2}

	// Then: the original is untouched
	assert.Equal(t, "", game.Cells[5])
	assert.Equal(t, "Bob", game.Players[1].Name)
	assert.Equal(t, Coord{X: 0, Y: 0}, game.WinningLine[0])
}

func TestGame_PlayerByID(t *testing.T) {
	alice := &Player{ID: "a", Name: "Alice"}
	game := &Game{Players: []*Player{alice, {ID: "b", Name: "Bob"}}}

	assert.Same(t, alice, game.PlayerByID("a"))
	assert.Nil(t, game.PlayerByID("c"))
}

func TestPlayer_Is(t *testing.T) {
	alice := &Player{ID: "a", Name: "Alice"}

	assert.True(t, alice.Is(&Player{ID: "a", Name: "Renamed"}))
	assert.False(t, alice.Is(&Player{ID: "b"}))
	assert.False(t, alice.Is(nil))
}
