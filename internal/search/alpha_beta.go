package search

import "github.com/rocketscienceinc/tictactoe-minimax/internal/entity"

// AlphaBeta is minimax with alpha-beta pruning. It returns the same score as Minimax for
// every position while visiting fewer nodes.
type AlphaBeta struct {
	players Players
}

func NewAlphaBeta(players Players) *AlphaBeta {
	return &AlphaBeta{players: players}
}

func (that *AlphaBeta) Algorithm() Algorithm {
	return AlgorithmAlphaBeta
}

func (that *AlphaBeta) Players() Players {
	return that.players
}

func (that *AlphaBeta) BestMove(board *entity.Board, side entity.Side, maxDepth int) Result {
	if side == that.players.Maximizer {
		return that.SearchMax(board, LowerBound, UpperBound, 0, maxDepth)
	}
	return that.SearchMin(board, LowerBound, UpperBound, 0, maxDepth)
}

// SearchMax - evaluates the position with the maximizer to move inside the (alpha, beta) window.
func (that *AlphaBeta) SearchMax(board *entity.Board, alpha, beta, depth, maxDepth int) Result {
	var nodes int
	score, move := that.max(board, alpha, beta, depth, maxDepth, &nodes)

	return Result{Score: score, Move: move, Nodes: nodes}
}

// SearchMin - evaluates the position with the minimizer to move inside the (alpha, beta) window.
func (that *AlphaBeta) SearchMin(board *entity.Board, alpha, beta, depth, maxDepth int) Result {
	var nodes int
	score, move := that.min(board, alpha, beta, depth, maxDepth, &nodes)

	return Result{Score: score, Move: move, Nodes: nodes}
}

func (that *AlphaBeta) max(board *entity.Board, alpha, beta, depth, maxDepth int, nodes *int) (int, entity.Move) {
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
			score, _ := that.min(board, alpha, beta, depth+1, maxDepth, nodes)
			board.ClearCell(row, col)

			if score > best {
				best, bestMove = score, entity.Move{Row: row, Col: col}
			}

			// beta cut: the minimizer already has something better on this path
			if best >= beta {
				return best, bestMove
			}

			if best > alpha {
				alpha = best
			}
		}
	}

	return best, bestMove
}

func (that *AlphaBeta) min(board *entity.Board, alpha, beta, depth, maxDepth int, nodes *int) (int, entity.Move) {
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
			score, _ := that.max(board, alpha, beta, depth+1, maxDepth, nodes)
			board.ClearCell(row, col)

			if score < best {
				best, bestMove = score, entity.Move{Row: row, Col: col}
			}

			// alpha cut
			if best <= alpha {
				return best, bestMove
			}

			if best < beta {
				beta = best
			}
		}
	}

	return best, bestMove
}
