// Package search implements adversarial tree search over the shared tic-tac-toe board.
//
// Every engine mutates the board it is given in place: a mark is applied, the subtree is
// explored and the mark is erased before the call returns. A board must therefore not be
// read or written by anything else while a search over it is running.
package search

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	// Scores from the maximizer's point of view.
	MinimizerWins = -1
	Neutral       = 0
	MaximizerWins = 1

	// LowerBound and UpperBound lie outside [-1, 1] so the first real score always improves on them.
	LowerBound = -2
	UpperBound = 2

	// Unbounded is deep enough to reach every terminal position of a 3x3 board.
	Unbounded = entity.Size * entity.Size
)

type Algorithm string

const (
	AlgorithmMinimax   Algorithm = "minimax"
	AlgorithmAlphaBeta Algorithm = "alpha-beta"
)

var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

// Players fixes which side maximizes and which minimizes for a whole game.
type Players struct {
	Maximizer entity.Side
	Minimizer entity.Side
}

var DefaultPlayers = Players{Maximizer: entity.SideO, Minimizer: entity.SideX}

// Result is the evaluated score of a position and the recommended move.
// Nodes counts the positions visited to produce it.
type Result struct {
	Score int         `json:"score"`
	Move  entity.Move `json:"move"`
	Nodes int         `json:"nodes"`
}

type Engine interface {
	Algorithm() Algorithm
	Players() Players

	// BestMove - searches from the root for side, bounded by maxDepth plies.
	BestMove(board *entity.Board, side entity.Side, maxDepth int) Result
}

func New(algorithm Algorithm, players Players) (Engine, error) {
	switch algorithm {
	case AlgorithmMinimax:
		return NewMinimax(players), nil
	case AlgorithmAlphaBeta:
		return NewAlphaBeta(players), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// terminalScore - the score of a finished position, false if the game goes on.
func terminalScore(board *entity.Board, players Players) (int, bool) {
	outcome := board.Outcome()

	switch outcome {
	case entity.InProgress:
		return Neutral, false
	case entity.Draw:
		return Neutral, true
	}

	winner, _ := outcome.Winner()
	if winner == players.Minimizer {
		return MinimizerWins, true
	}
	return MaximizerWins, true
}
