package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"parcel-ledger/internal/core/logger"
	"parcel-ledger/internal/features/enrichment/domain"
	"parcel-ledger/internal/features/enrichment/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Executor runs one sync synchronously. Engine implements it.
type Executor interface {
	Execute(ctx context.Context, mode domain.Mode, emit func(domain.Event)) error
}

// Coordinator implements ports.SyncService. It runs syncs in the background,
// records their state in the run repository and allows one run per ledger.
type Coordinator struct {
	engine Executor
	runs   ports.RunRepository
	path   string
	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCoordinator creates a new Coordinator for the ledger at path.
func NewCoordinator(engine Executor, runs ports.RunRepository, path string) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		engine: engine,
		runs:   runs,
		path:   path,
		logger: logger.Named("coordinator"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches a background run. It returns ErrRunInProgress while another
// run holds the ledger.
func (c *Coordinator) Start(ctx context.Context, mode domain.Mode) (*domain.Run, error) {
	if mode != domain.ModeTracking && mode != domain.ModePayment {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMode, mode)
	}

	id := uuid.NewString()
	ok, err := c.runs.Lock(ctx, c.path, id)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if !ok {
		return nil, domain.ErrRunInProgress
	}

	run := domain.NewRun(id, mode, time.Now().UTC())
	if err := c.runs.Save(ctx, run); err != nil {
		_ = c.runs.Unlock(context.Background(), c.path, id)
		return nil, fmt.Errorf("service: failed to record run: %w", err)
	}

	c.logger.Info("Sync run started", zap.String("run_id", id), zap.String("mode", string(mode)))

	snapshot := *run
	c.wg.Add(1)
	go c.execute(run)

	return &snapshot, nil
}

// Get returns the recorded state of a run.
func (c *Coordinator) Get(ctx context.Context, id string) (*domain.Run, error) {
	return c.runs.Get(ctx, id)
}

// Wait blocks until all background runs have finished.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// Close cancels running syncs and waits for them to persist their progress.
func (c *Coordinator) Close() {
	c.cancel()
	c.wg.Wait()
}

func (c *Coordinator) execute(run *domain.Run) {
	defer c.wg.Done()
	log := c.logger.With(zap.String("run_id", run.ID))

	lockLost := false
	err := c.engine.Execute(c.ctx, run.Mode, func(e domain.Event) {
		run.Apply(e)
		if err := c.runs.Save(c.ctx, run); err != nil {
			log.Warn("Failed to record run progress", zap.Error(err))
		}

		// Each event renews the lock so long runs outlive RUN_LOCK_TTL.
		held, err := c.runs.Extend(c.ctx, c.path, run.ID)
		switch {
		case err != nil:
			log.Warn("Failed to extend ledger lock", zap.Error(err))
		case !held && !lockLost:
			lockLost = true
			log.Error("Ledger lock expired during the run; other writers may have touched the ledger")
		}
	})

	// The run context may already be cancelled; final bookkeeping must still land.
	bg := context.Background()
	run.Finish(err, time.Now().UTC())
	if err := c.runs.Save(bg, run); err != nil {
		log.Error("Failed to record run result", zap.Error(err))
	}
	if err := c.runs.Unlock(bg, c.path, run.ID); err != nil {
		log.Error("Failed to release ledger lock", zap.Error(err))
	}

	log.Info("Sync run finished",
		zap.String("state", string(run.State)),
		zap.Int("progress", run.Progress),
		zap.Int("errors", len(run.Errors)),
	)
}
