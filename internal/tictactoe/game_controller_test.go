package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func TestNewGameController(t *testing.T) {
	// Given: create a new game where O starts
	controller := NewGameController(entity.SideO)

	// Then: the game state should correspond to the expected initial state
	assert.Equal(t, entity.SideO, controller.Turn())
	assert.Equal(t, entity.SideO, controller.Starter())
	assert.Equal(t, entity.InProgress, controller.Outcome())
	assert.Equal(t, *entity.NewBoard(), *controller.Board())
}

func TestGameController_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: create a new game
		controller := NewGameController(entity.SideX)

		// When: player X makes a turn
		err := controller.MakeTurn(entity.SideX, entity.Move{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: the board reflects the turn and the queue changes
		assert.Equal(t, entity.MarkX, controller.Board().Cell(0, 0))
		assert.Equal(t, entity.SideO, controller.Turn())
		assert.False(t, controller.IsFinished())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: new game with X in the corner
		controller := NewGameController(entity.SideX)
		require.NoError(t, controller.MakeTurn(entity.SideX, entity.Move{Row: 0, Col: 0}))

		// When: player O tries to make a move to the same square
		err := controller.MakeTurn(entity.SideO, entity.Move{Row: 0, Col: 0})

		// Then: an error ErrInvalidMove must be returned and the turn stays with O
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, entity.SideO, controller.Turn())
		assert.Equal(t, "X........", controller.Board().Key())
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game
		controller := NewGameController(entity.SideX)

		// When: player O tries to make a move when it is player X's turn
		err := controller.MakeTurn(entity.SideO, entity.Move{Row: 1, Col: 1})

		// Then: an error ErrNotYourTurn must be returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, *entity.NewBoard(), *controller.Board())
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		controller := NewGameController(entity.SideX)

		for _, move := range []entity.Move{{Row: 3, Col: 0}, {Row: 0, Col: -1}, entity.NoMove} {
			err := controller.MakeTurn(entity.SideX, move)

			assert.ErrorIs(t, err, apperror.ErrInvalidMove, "move %s", move)
		}
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X about to complete the top row
		controller := NewGameController(entity.SideX)
		for _, move := range []entity.Move{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}} {
			require.NoError(t, controller.MakeTurn(controller.Turn(), move))
		}

		// When: X plays the last cell of the row
		err := controller.MakeTurn(entity.SideX, entity.Move{Row: 0, Col: 2})

		// Then: the game is over and X is the winner
		require.NoError(t, err)
		assert.Equal(t, entity.XWins, controller.Outcome())

		// Then: further moves are rejected
		err = controller.MakeTurn(entity.SideX, entity.Move{Row: 2, Col: 2})
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
		err = controller.MakeTurn(entity.SideO, entity.Move{Row: 2, Col: 2})
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		controller := NewGameController(entity.SideX)
		moves := []entity.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}

		for _, move := range moves {
			require.NoError(t, controller.MakeTurn(controller.Turn(), move))
		}

		assert.Equal(t, entity.Draw, controller.Outcome())
	})
}

func TestGameController_NewRound(t *testing.T) {
	// Given: a finished game started by O
	controller := NewGameController(entity.SideO)
	for _, move := range []entity.Move{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 2}} {
		require.NoError(t, controller.MakeTurn(controller.Turn(), move))
	}
	require.Equal(t, entity.OWins, controller.Outcome())

	// When: a new round begins
	controller.NewRound()

	// Then: the board is empty and O opens again
	assert.Equal(t, *entity.NewBoard(), *controller.Board())
	assert.Equal(t, entity.SideO, controller.Turn())
	assert.Equal(t, entity.InProgress, controller.Outcome())
}
