package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
)

type memoryEntry struct {
	result    search.Result
	expiresAt time.Time
}

type memoryEvaluation struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewInMemoryEvaluationRepository - process local repository with the same semantics as the Redis one.
func NewInMemoryEvaluationRepository(ttl time.Duration) EvaluationRepository {
	return &memoryEvaluation{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (that *memoryEvaluation) Save(_ context.Context, key string, result search.Result) error {
	entry := memoryEntry{result: result}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.entries[key] = entry

	return nil
}

func (that *memoryEvaluation) GetByKey(_ context.Context, key string) (search.Result, error) {
	that.mu.RLock()
	entry, ok := that.entries[key]
	that.mu.RUnlock()

	if !ok || that.expired(entry) {
		return search.Result{}, ErrEvaluationNotFound
	}

	return entry.result, nil
}

func (that *memoryEvaluation) DeleteByKey(_ context.Context, key string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.entries[key]
	if !ok || that.expired(entry) {
		return ErrEvaluationNotFound
	}

	delete(that.entries, key)

	return nil
}

func (that *memoryEvaluation) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt)
}
