package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownSide = errors.New("unknown side")

type Mark uint8

const (
	Empty Mark = iota
	MarkX
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "."
	}
}

func markFromRune(r rune) (Mark, bool) {
	switch r {
	case 'X', 'x':
		return MarkX, true
	case 'O', 'o':
		return MarkO, true
	case '.':
		return Empty, true
	default:
		return Empty, false
	}
}

// Side is one of the two players.
type Side uint8

const (
	SideX Side = iota + 1
	SideO
)

func ParseSide(value string) (Side, error) {
	switch value {
	case "X", "x":
		return SideX, nil
	case "O", "o":
		return SideO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSide, value)
	}
}

func (that Side) Mark() Mark {
	if that == SideX {
		return MarkX
	}
	return MarkO
}

func (that Side) Opponent() Side {
	if that == SideX {
		return SideO
	}
	return SideX
}

func (that Side) String() string {
	return that.Mark().String()
}

// Move is a cell coordinate. NoMove stands for the absence of a move.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

var NoMove = Move{Row: -1, Col: -1}

func (that Move) IsNone() bool {
	return that == NoMove
}

func (that Move) String() string {
	if that.IsNone() {
		return "none"
	}
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) IsTerminal() bool {
	return that != InProgress
}

// Winner - returns the winning side, false for a draw or an unfinished game.
func (that Outcome) Winner() (Side, bool) {
	switch that {
	case XWins:
		return SideX, true
	case OWins:
		return SideO, true
	default:
		return 0, false
	}
}

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}
