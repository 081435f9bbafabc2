// Package console is the terminal front end: it asks for the algorithm, game mode and
// difficulty, renders the board, reads coordinates and loops rounds until the user stops.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const replayAnswer = "p"

type botService interface {
	BestMove(ctx context.Context, engine search.Engine, board *entity.Board, side entity.Side, maxDepth int) (service.Evaluation, error)
	MakeTurn(ctx context.Context, engine search.Engine, game *tictactoe.GameController, maxDepth int) (service.Evaluation, error)
}

type Options struct {
	Starter   entity.Side
	Players   search.Players
	HardDepth int
	EasyDepth int
}

type Console struct {
	logger *slog.Logger

	in  *bufio.Scanner
	out io.Writer

	bot botService

	starter   entity.Side
	players   search.Players
	hardDepth int
	easyDepth int
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, bot botService, opts Options) *Console {
	return &Console{
		logger:    logger.With("component", "console"),
		in:        bufio.NewScanner(in),
		out:       out,
		bot:       bot,
		starter:   opts.Starter,
		players:   opts.Players,
		hardDepth: opts.HardDepth,
		easyDepth: opts.EasyDepth,
	}
}

// Run - plays games until the user declines a rematch or the input ends.
func (that *Console) Run(ctx context.Context) error {
	that.println(strings.Repeat("*", 51))
	that.println(strings.Repeat(" ", 20) + "Tic-Tac-Toe" + strings.Repeat(" ", 20))
	that.println(strings.Repeat("*", 51))

	err := that.run(ctx)
	if errors.Is(err, io.EOF) {
		that.logger.Info("input closed, leaving")
		return nil
	}

	return err
}

func (that *Console) run(ctx context.Context) error {
	algorithm, err := that.chooseAlgorithm(ctx)
	if err != nil {
		return err
	}

	engine, err := search.New(algorithm, that.players)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	game := tictactoe.NewGameController(that.starter)

	for {
		mode, err := that.chooseMode(ctx)
		if err != nil {
			return err
		}

		maxDepth := search.Unbounded
		if mode.hasLevel() {
			if maxDepth, err = that.chooseDepth(ctx); err != nil {
				return err
			}
		}

		that.logger.Info("round started", "algorithm", algorithm, "mode", int(mode), "maxDepth", maxDepth)

		if err = that.playRound(ctx, engine, game, mode, maxDepth); err != nil {
			return err
		}

		game.NewRound()

		that.print("If you want to play again enter <p> otherwise enter any key to quit: ")
		answer, err := that.readLine(ctx)
		if err != nil {
			return err
		}

		if strings.TrimSpace(answer) != replayAnswer {
			return nil
		}
	}
}

// playRound - alternates turns until the board reports a result.
func (that *Console) playRound(ctx context.Context, engine search.Engine, game *tictactoe.GameController, mode Mode, maxDepth int) error {
	for {
		that.renderBoard(game.Board())

		if game.IsFinished() {
			that.announce(game.Outcome())
			that.logger.Info("round finished", "outcome", game.Outcome().String())
			return nil
		}

		var err error
		if mode.isComputer(game.Turn()) {
			err = that.computerTurn(ctx, engine, game, maxDepth)
		} else {
			err = that.humanTurn(ctx, engine, game, mode)
		}

		if err != nil {
			return err
		}
	}
}

func (that *Console) computerTurn(ctx context.Context, engine search.Engine, game *tictactoe.GameController, maxDepth int) error {
	evaluation, err := that.bot.MakeTurn(ctx, engine, game, maxDepth)
	if err != nil {
		return fmt.Errorf("computer turn failed: %w", err)
	}

	that.printf("Evaluation time: %.2fs\n", evaluation.Elapsed.Seconds())
	that.printf("Move: X = %d, Y = %d\n", evaluation.Move.Row, evaluation.Move.Col)

	return nil
}

// humanTurn - the hint always runs unbounded, whatever the difficulty of the computer's own moves.
func (that *Console) humanTurn(ctx context.Context, engine search.Engine, game *tictactoe.GameController, mode Mode) error {
	side := game.Turn()

	if mode.showsHint() {
		hint, err := that.bot.BestMove(ctx, engine, game.Board(), side, search.Unbounded)
		if err != nil {
			return fmt.Errorf("failed to compute hint: %w", err)
		}

		that.printf("Evaluation time: %.2fs\n", hint.Elapsed.Seconds())
		that.printf("Recommended move: X = %d, Y = %d\n", hint.Move.Row, hint.Move.Col)
	}

	for {
		row, err := that.readCoordinate(ctx, "Insert the X coordinate: ")
		if err != nil {
			return err
		}

		col, err := that.readCoordinate(ctx, "Insert the Y coordinate: ")
		if err != nil {
			return err
		}

		err = game.MakeTurn(side, entity.Move{Row: row, Col: col})
		if err == nil {
			return nil
		}

		if !errors.Is(err, apperror.ErrInvalidMove) {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		that.println("The move is not valid! Try again.")
	}
}

func (that *Console) readCoordinate(ctx context.Context, prompt string) (int, error) {
	for {
		that.print(prompt)

		line, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return value, nil
		}

		that.println("Invalid input!")
	}
}

// readLine - returns io.EOF once the input is exhausted.
func (that *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("console stopped: %w", err)
	}

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return that.in.Text(), nil
}
