package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/console"
)

var (
	ErrAddrNotFound        = errors.New("redis address string is empty")
	ErrUnknownCacheBackend = errors.New("unknown cache backend")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := shutdownContext(context.Background())
	defer stop()

	starter, err := entity.ParseSide(conf.StartingSide)
	if err != nil {
		return fmt.Errorf("invalid starting side: %w", err)
	}

	evaluationRepo, closeRepo, err := newEvaluationRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	botService := service.NewBotService(logger, evaluationRepo)

	terminal := console.New(logger, os.Stdin, os.Stdout, botService, console.Options{
		Starter:   starter,
		Players:   search.DefaultPlayers,
		HardDepth: conf.Difficulty.HardDepth,
		EasyDepth: conf.Difficulty.EasyDepth,
	})

	// the console blocks on stdin, so a signal has to be observed outside of it
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console", "cache", conf.Cache.Backend, "starter", starter.String())
		consoleErrCh <- terminal.Run(ctx)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}
		log.Info("Console closed")
		return nil
	case <-ctx.Done():
		log.Info("Received signal, shutting down")
		return nil
	}
}

// shutdownContext - cancelled on SIGINT or SIGTERM, stop releases the signal handler.
func shutdownContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// newEvaluationRepository - picks the evaluation cache named by the config. A nil repository disables caching.
func newEvaluationRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.EvaluationRepository, func(), error) {
	noop := func() {}

	switch conf.Cache.Backend {
	case config.CacheBackendNone:
		return nil, noop, nil
	case config.CacheBackendMemory:
		return repository.NewInMemoryEvaluationRepository(conf.Cache.TTL), noop, nil
	case config.CacheBackendRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, noop, ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return nil, noop, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeStorage := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewEvaluationRepository(redisStorage, conf.Cache.TTL), closeStorage, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownCacheBackend, conf.Cache.Backend)
	}
}
