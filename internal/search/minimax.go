package search

import "github.com/rocketscienceinc/tictactoe-minimax/internal/entity"

// Minimax is the exhaustive search: every legal continuation down to a terminal position
// or the depth bound is explored.
type Minimax struct {
	players Players
}

func NewMinimax(players Players) *Minimax {
	return &Minimax{players: players}
}

func (that *Minimax) Algorithm() Algorithm {
	return AlgorithmMinimax
}

func (that *Minimax) Players() Players {
	return that.players
}

func (that *Minimax) BestMove(board *entity.Board, side entity.Side, maxDepth int) Result {
	if side == that.players.Maximizer {
		return that.SearchMax(board, 0, maxDepth)
	}
	return that.SearchMin(board, 0, maxDepth)
}

// SearchMax - evaluates the position with the maximizer to move.
func (that *Minimax) SearchMax(board *entity.Board, depth, maxDepth int) Result {
	var nodes int
	score, move := that.max(board, depth, maxDepth, &nodes)

	return Result{Score: score, Move: move, Nodes: nodes}
}

// SearchMin - evaluates the position with the minimizer to move.
func (that *Minimax) SearchMin(board *entity.Board, depth, maxDepth int) Result {
	var nodes int
	score, move := that.min(board, depth, maxDepth, &nodes)

	return Result{Score: score, Move: move, Nodes: nodes}
}

func (that *Minimax) max(board *entity.Board, depth, maxDepth int, nodes *int) (int, entity.Move) {
	*nodes++

	if depth > maxDepth {
		return Neutral, entity.NoMove
	}

	if score, done := terminalScore(board, that.players); done {
		return score, entity.NoMove
	}

	best, bestMove := LowerBound, entity.NoMove
	for row := 0; row < entity.Size; row++ {
		for col := 0; col < entity.Size; col++ {
			if board.Cell(row, col) != entity.Empty {
				continue
			}

			board.ApplyMove(row, col, that.players.Maximizer)
			score, _ := that.min(board, depth+1, maxDepth, nodes)
			board.ClearCell(row, col)

			// strict: the first cell reaching the best score is kept
			if score > best {
				best, bestMove = score, entity.Move{Row: row, Col: col}
			}
		}
	}

	return best, bestMove
}

func (that *Minimax) min(board *entity.Board, depth, maxDepth int, nodes *int) (int, entity.Move) {
	*nodes++

	if depth > maxDepth {
		return Neutral, entity.NoMove
	}

	if score, done := terminalScore(board, that.players); done {
		return score, entity.NoMove
	}

	best, bestMove := UpperBound, entity.NoMove
	for row := 0; row < entity.Size; row++ {
		for col := 0; col < entity.Size; col++ {
			if board.Cell(row, col) != entity.Empty {
				continue
			}

			board.ApplyMove(row, col, that.players.Minimizer)
			score, _ := that.max(board, depth+1, maxDepth, nodes)
			board.ClearCell(row, col)

			if score < best {
				best, bestMove = score, entity.Move{Row: row, Col: col}
			}
		}
	}

	return best, bestMove
}
