package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func (that *Console) renderBoard(board *entity.Board) {
	that.println(board.String())
	that.println(strings.Repeat("-", 20))
}

func (that *Console) announce(outcome entity.Outcome) {
	switch outcome {
	case entity.XWins:
		that.println("X Win!")
	case entity.OWins:
		that.println("O Win!")
	case entity.Draw:
		that.println("Draw!")
	}
}

// output errors are ignored, there is nowhere left to report them
func (that *Console) print(text string) {
	_, _ = fmt.Fprint(that.out, text)
}

func (that *Console) println(text string) {
	_, _ = fmt.Fprintln(that.out, text)
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
