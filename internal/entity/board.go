package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of rows and columns of the board.
const Size = 3

var ErrInvalidBoard = errors.New("invalid board")

// Board is the 3x3 grid of cell marks.
//
// ApplyMove and ClearCell do not check their coordinates, callers validate with IsValidMove first.
type Board struct {
	cells [Size][Size]Mark
}

func NewBoard() *Board {
	return &Board{}
}

// ParseBoard - builds a board from nine marks written row by row ('X', 'O', '.'),
// whitespace and '/' separators are ignored.
func ParseBoard(layout string) (*Board, error) {
	board := NewBoard()

	idx := 0
	for _, r := range layout {
		if r == ' ' || r == '\n' || r == '\t' || r == '/' {
			continue
		}

		mark, ok := markFromRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected mark %q", ErrInvalidBoard, r)
		}

		if idx >= Size*Size {
			return nil, fmt.Errorf("%w: more than %d cells", ErrInvalidBoard, Size*Size)
		}

		board.cells[idx/Size][idx%Size] = mark
		idx++
	}

	if idx != Size*Size {
		return nil, fmt.Errorf("%w: got %d cells", ErrInvalidBoard, idx)
	}

	return board, nil
}

// MustParseBoard - like ParseBoard but panics on a malformed layout.
func MustParseBoard(layout string) *Board {
	board, err := ParseBoard(layout)
	if err != nil {
		panic(err)
	}
	return board
}

func (that *Board) IsValidMove(row, col int) bool {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return false
	}

	return that.cells[row][col] == Empty
}

func (that *Board) ApplyMove(row, col int, side Side) {
	that.cells[row][col] = side.Mark()
}

func (that *Board) ClearCell(row, col int) {
	that.cells[row][col] = Empty
}

func (that *Board) Reset() {
	for row := range that.cells {
		for col := range that.cells[row] {
			that.cells[row][col] = Empty
		}
	}
}

func (that *Board) Cell(row, col int) Mark {
	return that.cells[row][col]
}

// Outcome - checks rows, then columns, then both diagonals and stops at the first complete line.
func (that *Board) Outcome() Outcome {
	c := &that.cells

	for row := 0; row < Size; row++ {
		if c[row][0] != Empty && c[row][0] == c[row][1] && c[row][1] == c[row][2] {
			return winOutcome(c[row][0])
		}
	}

	for col := 0; col < Size; col++ {
		if c[0][col] != Empty && c[0][col] == c[1][col] && c[1][col] == c[2][col] {
			return winOutcome(c[0][col])
		}
	}

	if c[0][0] != Empty && c[0][0] == c[1][1] && c[1][1] == c[2][2] {
		return winOutcome(c[0][0])
	}

	if c[0][2] != Empty && c[0][2] == c[1][1] && c[1][1] == c[2][0] {
		return winOutcome(c[0][2])
	}

	if that.EmptyCells() == 0 {
		return Draw
	}

	return InProgress
}

func (that *Board) EmptyCells() int {
	count := 0
	for row := range that.cells {
		for col := range that.cells[row] {
			if that.cells[row][col] == Empty {
				count++
			}
		}
	}
	return count
}

// SideToMove - the side whose turn it is, assuming starter moved first and turns alternated.
func (that *Board) SideToMove(starter Side) Side {
	if (Size*Size-that.EmptyCells())%2 == 0 {
		return starter
	}
	return starter.Opponent()
}

// Clone returns an independent copy of the board.
func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

// Key is a compact row-major encoding, e.g. "XO..X...O".
func (that *Board) Key() string {
	var sb strings.Builder
	sb.Grow(Size * Size)

	for row := range that.cells {
		for col := range that.cells[row] {
			sb.WriteString(that.cells[row][col].String())
		}
	}

	return sb.String()
}

func (that *Board) String() string {
	var sb strings.Builder

	for row := range that.cells {
		for col := range that.cells[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(that.cells[row][col].String())
		}
		if row < Size-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func winOutcome(mark Mark) Outcome {
	if mark == MarkX {
		return XWins
	}
	return OWins
}
