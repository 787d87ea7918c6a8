package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"parcel-ledger/internal/core/cache"
	"parcel-ledger/internal/features/enrichment/domain"
)

const (
	runKeyPrefix  = "sync_run:"
	lockKeyPrefix = "ledger_lock:"
)

// RedisRunRepository implements ports.RunRepository using the cache adaptation.
type RedisRunRepository struct {
	cache   cache.Cache
	runTTL  time.Duration
	lockTTL time.Duration
}

// NewRedisRunRepository creates a new RedisRunRepository.
// Runs expire after runTTL; an abandoned ledger lock expires after lockTTL.
func NewRedisRunRepository(c cache.Cache, runTTL, lockTTL time.Duration) *RedisRunRepository {
	return &RedisRunRepository{
		cache:   c,
		runTTL:  runTTL,
		lockTTL: lockTTL,
	}
}

// Save stores the run in the cache.
func (r *RedisRunRepository) Save(ctx context.Context, run *domain.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	if err := r.cache.Set(ctx, runKeyPrefix+run.ID, data, r.runTTL); err != nil {
		return fmt.Errorf("failed to save run to cache: %w", err)
	}
	return nil
}

// Get retrieves a run from the cache.
func (r *RedisRunRepository) Get(ctx context.Context, id string) (*domain.Run, error) {
	data, err := r.cache.Get(ctx, runKeyPrefix+id)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRunNotFound, id)
		}
		return nil, fmt.Errorf("failed to get run from cache: %w", err)
	}

	var run domain.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}
	return &run, nil
}

// Lock acquires the ledger lock for runID.
func (r *RedisRunRepository) Lock(ctx context.Context, ledgerPath, runID string) (bool, error) {
	ok, err := r.cache.SetNX(ctx, lockKeyPrefix+ledgerPath, []byte(runID), r.lockTTL)
	if err != nil {
		return false, fmt.Errorf("failed to acquire ledger lock: %w", err)
	}
	return ok, nil
}

// Extend renews the ledger lock TTL if runID still holds it.
// It reports whether runID holds the lock.
func (r *RedisRunRepository) Extend(ctx context.Context, ledgerPath, runID string) (bool, error) {
	key := lockKeyPrefix + ledgerPath

	holder, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read ledger lock: %w", err)
	}
	if string(holder) != runID {
		return false, nil
	}

	if err := r.cache.Set(ctx, key, holder, r.lockTTL); err != nil {
		return false, fmt.Errorf("failed to extend ledger lock: %w", err)
	}
	return true, nil
}

// Unlock releases the ledger lock if runID still holds it.
func (r *RedisRunRepository) Unlock(ctx context.Context, ledgerPath, runID string) error {
	key := lockKeyPrefix + ledgerPath

	holder, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read ledger lock: %w", err)
	}
	if string(holder) != runID {
		return nil
	}

	if err := r.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to release ledger lock: %w", err)
	}
	return nil
}
