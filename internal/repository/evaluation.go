package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
)

const evaluationKeyPrefix = "evaluation:"

var (
	ErrEvaluationNotFound  = errors.New("evaluation not found")
	ErrMalformedEvaluation = errors.New("malformed evaluation")
)

// EvaluationRepository stores search results by position key.
type EvaluationRepository interface {
	Save(ctx context.Context, key string, result search.Result) error
	GetByKey(ctx context.Context, key string) (search.Result, error)
	DeleteByKey(ctx context.Context, key string) error
}

type dbEvaluation struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEvaluationRepository - Redis backed repository, entries expire after ttl (0 keeps them forever).
func NewEvaluationRepository(client *redis.Client, ttl time.Duration) EvaluationRepository {
	return &dbEvaluation{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbEvaluation) Save(ctx context.Context, key string, result search.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal evaluation: %w", err)
	}

	if err = that.client.Set(ctx, evaluationKeyPrefix+key, resultJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set evaluation: %w", err)
	}

	return nil
}

func (that *dbEvaluation) GetByKey(ctx context.Context, key string) (search.Result, error) {
	response, err := that.client.Get(ctx, evaluationKeyPrefix+key).Result()

	if errors.Is(err, redis.Nil) {
		return search.Result{}, ErrEvaluationNotFound
	}

	if err != nil {
		return search.Result{}, fmt.Errorf("failed to get evaluation by key: %w", err)
	}

	var result search.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return search.Result{}, fmt.Errorf("%w: %w", ErrMalformedEvaluation, err)
	}

	return result, nil
}

func (that *dbEvaluation) DeleteByKey(ctx context.Context, key string) error {
	deleted, err := that.client.Del(ctx, evaluationKeyPrefix+key).Result()
	if err != nil {
		return fmt.Errorf("failed to delete evaluation by key: %w", err)
	}

	if deleted == 0 {
		return ErrEvaluationNotFound
	}

	return nil
}
