package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// GameController owns the state of one game session: the board, the side to move and the
// side that opens every round.
type GameController struct {
	board   *entity.Board
	turn    entity.Side
	starter entity.Side
	outcome entity.Outcome
}

func NewGameController(starter entity.Side) *GameController {
	return &GameController{
		board:   entity.NewBoard(),
		turn:    starter,
		starter: starter,
		outcome: entity.InProgress,
	}
}

// Board - the shared board. Searches run on it directly and leave it as they found it.
func (that *GameController) Board() *entity.Board {
	return that.board
}

func (that *GameController) Turn() entity.Side {
	return that.turn
}

func (that *GameController) Starter() entity.Side {
	return that.starter
}

func (that *GameController) Outcome() entity.Outcome {
	return that.outcome
}

func (that *GameController) IsFinished() bool {
	return that.outcome.IsTerminal()
}

// MakeTurn - validates and plays a move for side, then passes the turn.
func (that *GameController) MakeTurn(side entity.Side, move entity.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := that.validateMove(side, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.board.ApplyMove(move.Row, move.Col, side)
	that.updateGameStatus(side)

	return nil
}

// NewRound - clears the board and gives the first move back to the starting side.
func (that *GameController) NewRound() {
	that.board.Reset()
	that.turn = that.starter
	that.outcome = entity.InProgress
}

// validateMove - checks if the move is valid.
func (that *GameController) validateMove(side entity.Side, move entity.Move) error {
	if that.turn != side {
		return apperror.ErrNotYourTurn
	}

	if !that.board.IsValidMove(move.Row, move.Col) {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidMove, move)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func (that *GameController) updateGameStatus(side entity.Side) {
	that.outcome = that.board.Outcome()
	if !that.outcome.IsTerminal() {
		that.turn = side.Opponent()
	}
}
