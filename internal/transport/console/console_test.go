package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var errEngineBroken = errors.New("engine broken")

type mockBot struct {
	mock.Mock
}

func (that *mockBot) BestMove(ctx context.Context, engine search.Engine, board *entity.Board, side entity.Side, maxDepth int) (service.Evaluation, error) {
	args := that.Called(ctx, engine, board, side, maxDepth)
	return args.Get(0).(service.Evaluation), args.Error(1)
}

func (that *mockBot) MakeTurn(ctx context.Context, engine search.Engine, game *tictactoe.GameController, maxDepth int) (service.Evaluation, error) {
	args := that.Called(ctx, engine, game, maxDepth)
	return args.Get(0).(service.Evaluation), args.Error(1)
}

func newTestConsole(input string, bot botService) (*Console, *bytes.Buffer) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	out := &bytes.Buffer{}

	if bot == nil {
		bot = service.NewBotService(logger, repository.NewInMemoryEvaluationRepository(0))
	}

	return New(logger, strings.NewReader(input), out, bot, Options{
		Starter:   entity.SideX,
		Players:   search.DefaultPlayers,
		HardDepth: search.Unbounded,
		EasyDepth: 3,
	}), out
}

func TestConsole_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("AI vs AI ends in a draw", func(t *testing.T) {
		// Given: alpha-beta, AI vs AI, then quit
		console, out := newTestConsole("1\n4\nq\n", nil)

		// When: running the console
		err := console.Run(ctx)

		// Then: nine computer moves are played and the game is drawn
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Tic-Tac-Toe")
		assert.Contains(t, out.String(), "Draw!")
		assert.Equal(t, 9, strings.Count(out.String(), "Move: X = "))
		assert.NotContains(t, out.String(), "Choose AI level")
	})

	t.Run("Human vs Human with invalid input", func(t *testing.T) {
		// Given: X takes the top row while O fumbles, then a rematch is requested and input ends
		input := strings.Join([]string{
			"2", "3",
			"0", "0", // X
			"0", "0", // O on an occupied cell
			"abc", "1", "0", // O after a non-numeric row
			"0", "1", // X
			"1", "1", // O
			"0", "2", // X wins
			"p",
		}, "\n") + "\n"
		console, out := newTestConsole(input, nil)

		// When: running the console
		err := console.Run(ctx)

		// Then: the mistakes are reported and X wins
		require.NoError(t, err)
		assert.Contains(t, out.String(), "The move is not valid! Try again.")
		assert.Contains(t, out.String(), "Invalid input!")
		assert.Contains(t, out.String(), "X Win!")
		assert.NotContains(t, out.String(), "Recommended move")
		assert.Equal(t, 2, strings.Count(out.String(), "Choose game mode:"))
	})

	t.Run("Human vs AI shows a hint and the computer answers", func(t *testing.T) {
		// Given: alpha-beta, Human vs AI on Easy, X plays the centre, then input ends
		console, out := newTestConsole("1\n1\n2\n1\n1\n", nil)

		// When: running the console
		err := console.Run(ctx)

		// Then: the human saw two hints and the computer moved once
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out.String(), "Recommended move: X = "))
		assert.Equal(t, 1, strings.Count(out.String(), "\nMove: X = "))
		assert.Contains(t, out.String(), "Choose AI level")
	})

	t.Run("AI vs Human lets the computer open", func(t *testing.T) {
		// Given: minimax, AI vs Human on Hard
		console, out := newTestConsole("2\n2\n1\n", nil)

		// When: running the console until input ends
		err := console.Run(ctx)

		// Then: X opens in the first cell that keeps the draw
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Move: X = 0, Y = 0")
		assert.Contains(t, out.String(), "Recommended move: X = ")
	})

	t.Run("Invalid menu choices are re-prompted", func(t *testing.T) {
		console, out := newTestConsole("9\nminimax\n1\n7\n4\nq\n", nil)

		err := console.Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(out.String(), "Invalid input!"))
		assert.Contains(t, out.String(), "Draw!")
	})

	t.Run("Bot failure stops the console", func(t *testing.T) {
		// Given: a bot that cannot move
		bot := &mockBot{}
		bot.On("MakeTurn", mock.Anything, mock.Anything, mock.Anything, search.Unbounded).
			Return(service.Evaluation{}, errEngineBroken).
			Once()
		console, _ := newTestConsole("1\n4\n", bot)

		// When: running the console
		err := console.Run(ctx)

		// Then: the error is returned to the caller
		require.ErrorIs(t, err, errEngineBroken)
		bot.AssertExpectations(t)
	})

	t.Run("Canceled context stops before reading", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		console, _ := newTestConsole("1\n4\n", nil)

		err := console.Run(canceled)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseChoice(t *testing.T) {
	choice, err := parseChoice(" 2 ", 4)
	require.NoError(t, err)
	assert.Equal(t, 2, choice)

	for _, input := range []string{"0", "5", "two", ""} {
		_, err = parseChoice(input, 4)
		assert.ErrorIs(t, err, apperror.ErrInvalidChoice, "input %q", input)
	}
}

func TestMode(t *testing.T) {
	assert.True(t, ModeHumanVsAI.isComputer(entity.SideO))
	assert.False(t, ModeHumanVsAI.isComputer(entity.SideX))
	assert.True(t, ModeAIVsHuman.isComputer(entity.SideX))
	assert.False(t, ModeHumanVsHuman.isComputer(entity.SideO))
	assert.True(t, ModeAIVsAI.isComputer(entity.SideX))

	assert.True(t, ModeAIVsHuman.hasLevel())
	assert.False(t, ModeAIVsAI.hasLevel())
}
