package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// Evaluation is a search result together with how it was obtained.
type Evaluation struct {
	search.Result

	Elapsed time.Duration
	Cached  bool
}

type BotService interface {
	// BestMove - evaluates board for side. The board is searched in place and left unchanged.
	BestMove(ctx context.Context, engine search.Engine, board *entity.Board, side entity.Side, maxDepth int) (Evaluation, error)

	// MakeTurn - plays the engine's move for the side to move in game.
	MakeTurn(ctx context.Context, engine search.Engine, game *tictactoe.GameController, maxDepth int) (Evaluation, error)
}

type evaluationRepo interface {
	Save(ctx context.Context, key string, result search.Result) error
	GetByKey(ctx context.Context, key string) (search.Result, error)
	DeleteByKey(ctx context.Context, key string) error
}

type botService struct {
	logger *slog.Logger

	evaluationRepo evaluationRepo
}

// NewBotService - evaluationRepo may be nil, then every position is searched from scratch.
func NewBotService(logger *slog.Logger, evaluationRepo evaluationRepo) BotService {
	return &botService{
		logger:         logger.With("component", "bot"),
		evaluationRepo: evaluationRepo,
	}
}

func (that *botService) BestMove(ctx context.Context, engine search.Engine, board *entity.Board, side entity.Side, maxDepth int) (Evaluation, error) {
	log := that.logger.With("method", "BestMove", "algorithm", engine.Algorithm(), "side", side.String(), "maxDepth", maxDepth)

	if err := ctx.Err(); err != nil {
		return Evaluation{}, fmt.Errorf("evaluation canceled: %w", err)
	}

	key := evaluationKey(engine, board, side, maxDepth)

	start := time.Now()
	if cached, ok := that.lookup(ctx, log, key); ok {
		evaluation := Evaluation{Result: cached, Elapsed: time.Since(start), Cached: true}
		log.Debug("evaluation served from cache", "board", board.Key(), "score", cached.Score, "move", cached.Move.String())
		return evaluation, nil
	}

	result := engine.BestMove(board, side, maxDepth)
	evaluation := Evaluation{Result: result, Elapsed: time.Since(start)}

	log.Info("evaluation finished",
		"board", board.Key(),
		"score", result.Score,
		"move", result.Move.String(),
		"nodes", result.Nodes,
		"elapsed", evaluation.Elapsed,
	)

	if that.evaluationRepo != nil {
		if err := that.evaluationRepo.Save(ctx, key, result); err != nil {
			log.Error("failed to save evaluation", "error", err)
		}
	}

	return evaluation, nil
}

func (that *botService) MakeTurn(ctx context.Context, engine search.Engine, game *tictactoe.GameController, maxDepth int) (Evaluation, error) {
	if game.IsFinished() {
		return Evaluation{}, apperror.ErrGameFinished
	}

	side := game.Turn()

	evaluation, err := that.BestMove(ctx, engine, game.Board(), side, maxDepth)
	if err != nil {
		return Evaluation{}, err
	}

	if evaluation.Move.IsNone() {
		return evaluation, fmt.Errorf("%w for %s", apperror.ErrNoMoveFound, side)
	}

	if err = game.MakeTurn(side, evaluation.Move); err != nil {
		return evaluation, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return evaluation, nil
}

// lookup - a cache failure is logged and treated as a miss. Malformed entries are evicted.
func (that *botService) lookup(ctx context.Context, log *slog.Logger, key string) (search.Result, bool) {
	if that.evaluationRepo == nil {
		return search.Result{}, false
	}

	result, err := that.evaluationRepo.GetByKey(ctx, key)
	if errors.Is(err, repository.ErrEvaluationNotFound) {
		return search.Result{}, false
	}

	if errors.Is(err, repository.ErrMalformedEvaluation) {
		log.Warn("dropping malformed evaluation", "key", key, "error", err)
		if err = that.evaluationRepo.DeleteByKey(ctx, key); err != nil && !errors.Is(err, repository.ErrEvaluationNotFound) {
			log.Error("failed to delete evaluation", "error", err)
		}
		return search.Result{}, false
	}

	if err != nil {
		log.Error("failed to read evaluation", "error", err)
		return search.Result{}, false
	}

	return result, true
}

func evaluationKey(engine search.Engine, board *entity.Board, side entity.Side, maxDepth int) string {
	return fmt.Sprintf("%s:%s:%s:%d:%s", engine.Algorithm(), engine.Players().Maximizer, side, maxDepth, board.Key())
}
