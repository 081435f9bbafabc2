package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
)

type Mode int

const (
	ModeHumanVsAI Mode = iota + 1
	ModeAIVsHuman
	ModeHumanVsHuman
	ModeAIVsAI
)

// isComputer - whether side is played by the engine in this mode.
func (that Mode) isComputer(side entity.Side) bool {
	switch that {
	case ModeHumanVsAI:
		return side == entity.SideO
	case ModeAIVsHuman:
		return side == entity.SideX
	case ModeAIVsAI:
		return true
	default:
		return false
	}
}

// hasLevel - the difficulty menu only applies when a human plays the computer.
func (that Mode) hasLevel() bool {
	return that == ModeHumanVsAI || that == ModeAIVsHuman
}

// showsHint - humans facing the computer are shown the engine's recommendation.
func (that Mode) showsHint() bool {
	return that.hasLevel()
}

const (
	algorithmMenu = "Choose the algorithm\n\t1: Alpha-Beta\n\t2: minimax\nEnter the algorithm number: "
	modeMenu      = "Choose game mode:\n\t1: Human vs AI\n\t2: AI vs Human\n\t3: Human vs Human\n\t4: AI vs AI\nEnter your choice number: "
	levelMenu     = "Choose AI level:\n\t1: Hard\n\t2: Easy\nEnter your choice number: "
)

func (that *Console) chooseAlgorithm(ctx context.Context) (search.Algorithm, error) {
	choice, err := that.choose(ctx, algorithmMenu, 2)
	if err != nil {
		return "", err
	}

	if choice == 1 {
		return search.AlgorithmAlphaBeta, nil
	}
	return search.AlgorithmMinimax, nil
}

func (that *Console) chooseMode(ctx context.Context) (Mode, error) {
	choice, err := that.choose(ctx, modeMenu, 4)
	if err != nil {
		return 0, err
	}

	return Mode(choice), nil
}

// chooseDepth - Hard searches to the configured hard depth, Easy to the shallow one.
func (that *Console) chooseDepth(ctx context.Context) (int, error) {
	choice, err := that.choose(ctx, levelMenu, 2)
	if err != nil {
		return 0, err
	}

	if choice == 1 {
		return that.hardDepth, nil
	}
	return that.easyDepth, nil
}

// choose - prompts until a number in [1, options] is entered.
func (that *Console) choose(ctx context.Context, menu string, options int) (int, error) {
	for {
		that.print(menu)

		line, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		choice, err := parseChoice(line, options)
		if err == nil {
			return choice, nil
		}

		that.logger.Debug("rejected menu input", "input", line, "error", err)
		that.println("Invalid input!")
	}
}

func parseChoice(line string, options int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidChoice, line)
	}

	if choice < 1 || choice > options {
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidChoice, choice)
	}

	return choice, nil
}
