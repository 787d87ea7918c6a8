package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"parcel-ledger/internal/core/logger"
	"parcel-ledger/internal/features/ledger/domain"
	"parcel-ledger/internal/features/ledger/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LedgerService implements ports.LedgerService over a single ledger file.
type LedgerService struct {
	store   ports.LedgerStore
	batches ports.BatchSource
	path    string
	lock    ports.LedgerLock
	logger  *zap.Logger
}

// NewLedgerService creates a new LedgerService for the ledger at path.
func NewLedgerService(store ports.LedgerStore, batches ports.BatchSource, path string) *LedgerService {
	return &LedgerService{
		store:   store,
		batches: batches,
		path:    path,
		logger:  logger.Named("ledger"),
	}
}

// UseLock makes every write take lock on the ledger path first. Without a
// lock the service assumes a single writer.
func (s *LedgerService) UseLock(lock ports.LedgerLock) {
	s.lock = lock
}

// exclusive runs write while holding the ledger lock. It returns ErrLedgerBusy
// when a sync run or another write holds it.
func (s *LedgerService) exclusive(ctx context.Context, op string, write func() error) error {
	if s.lock == nil {
		return write()
	}

	holder := op + ":" + uuid.NewString()
	ok, err := s.lock.Lock(ctx, s.path, holder)
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if !ok {
		s.logger.Warn("Ledger busy", zap.String("operation", op))
		return fmt.Errorf("%w: %s rejected", domain.ErrLedgerBusy, op)
	}
	defer func() {
		// Release even when the request context is gone.
		if err := s.lock.Unlock(context.Background(), s.path, holder); err != nil {
			s.logger.Error("Failed to release ledger lock", zap.String("operation", op), zap.Error(err))
		}
	}()

	return write()
}

// Import merges batch into the ledger, ensures the enrichment columns and saves.
// On any failure the ledger file is left untouched.
func (s *LedgerService) Import(ctx context.Context, batch *domain.ImportBatch) (*domain.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var result *domain.ImportResult
	err := s.exclusive(ctx, "import", func() error {
		var err error
		result, err = s.importBatch(batch)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *LedgerService) importBatch(batch *domain.ImportBatch) (*domain.ImportResult, error) {
	current, err := s.store.Load(s.path)
	created := false
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("service: failed to load ledger: %w", err)
		}
		current = nil
		created = true
	}

	merged, err := Merge(batch, current)
	if err != nil {
		s.logger.Warn("Import rejected", zap.Error(err))
		return nil, err
	}
	EnsureColumns(merged)

	if err := s.store.Save(merged, s.path); err != nil {
		return nil, fmt.Errorf("service: failed to save ledger: %w", err)
	}

	result := &domain.ImportResult{
		Added:   batch.Len(),
		Total:   merged.Len(),
		Created: created,
	}
	s.logger.Info("Batch imported",
		zap.Int("added", result.Added),
		zap.Int("total", result.Total),
		zap.Bool("created", created),
	)
	return result, nil
}

// ImportFile reads the batch workbook at path and imports it.
func (s *LedgerService) ImportFile(ctx context.Context, path string) (*domain.ImportResult, error) {
	batch, err := s.batches.LoadBatch(path)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read batch: %w", err)
	}
	return s.Import(ctx, batch)
}

// SortByBookingDate orders rows ascending by booking date. Rows with an
// unparseable date keep their relative order after the dated ones.
func (s *LedgerService) SortByBookingDate(ctx context.Context) (*domain.SortResult, error) {
	var result *domain.SortResult
	err := s.exclusive(ctx, "sort", func() error {
		var err error
		result, err = s.sortLedger(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *LedgerService) sortLedger(ctx context.Context) (*domain.SortResult, error) {
	l, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := l.RequireColumns(domain.ColumnBookingDate); err != nil {
		return nil, err
	}

	type keyed struct {
		row   []string
		date  time.Time
		dated bool
	}
	rows := make([]keyed, l.Len())
	undated := 0
	for i, row := range l.Rows {
		date, ok := domain.ParseBookingDate(l.Cell(i, domain.ColumnBookingDate))
		if !ok {
			undated++
		}
		rows[i] = keyed{row: row, date: date, dated: ok}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].dated != rows[j].dated {
			return rows[i].dated
		}
		return rows[i].date.Before(rows[j].date)
	})
	for i, k := range rows {
		l.Rows[i] = k.row
	}

	if err := s.store.Save(l, s.path); err != nil {
		return nil, fmt.Errorf("service: failed to save ledger: %w", err)
	}

	s.logger.Info("Ledger sorted by booking date",
		zap.Int("rows", l.Len()),
		zap.Int("undated", undated),
	)
	return &domain.SortResult{Rows: l.Len(), Undated: undated}, nil
}

// Load returns the current ledger.
func (s *LedgerService) Load(ctx context.Context) (*domain.Ledger, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l, err := s.store.Load(s.path)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load ledger: %w", err)
	}
	return l, nil
}
