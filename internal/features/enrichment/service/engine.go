package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"parcel-ledger/internal/core/logger"
	"parcel-ledger/internal/features/enrichment/domain"
	"parcel-ledger/internal/features/enrichment/ports"
	ledgerdomain "parcel-ledger/internal/features/ledger/domain"
	ledgerports "parcel-ledger/internal/features/ledger/ports"
	ledgerservice "parcel-ledger/internal/features/ledger/service"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MaxPaymentBatchSize is the most ids the courier accepts per payment lookup.
const MaxPaymentBatchSize = 50

// Options tunes a sync run.
type Options struct {
	// TrackingWorkers bounds concurrent tracking lookups. Values below 1 mean 1.
	TrackingWorkers int
	// PaymentBatchSize is the number of ids per payment lookup. Values outside 1..50 mean 50.
	PaymentBatchSize int
}

// Engine refreshes ledger rows from the courier.
// It assumes exclusive ownership of the ledger file while a run executes.
type Engine struct {
	store    ledgerports.LedgerStore
	tracker  ports.TrackingProvider
	payments ports.PaymentProvider
	path     string
	opts     Options
	logger   *zap.Logger
}

// NewEngine creates a new Engine for the ledger at path.
func NewEngine(store ledgerports.LedgerStore, tracker ports.TrackingProvider, payments ports.PaymentProvider, path string, opts Options) *Engine {
	if opts.TrackingWorkers < 1 {
		opts.TrackingWorkers = 1
	}
	if opts.PaymentBatchSize < 1 || opts.PaymentBatchSize > MaxPaymentBatchSize {
		opts.PaymentBatchSize = MaxPaymentBatchSize
	}
	return &Engine{
		store:    store,
		tracker:  tracker,
		payments: payments,
		path:     path,
		opts:     opts,
		logger:   logger.Named("enrichment"),
	}
}

// syncStats counts row outcomes for the result message.
type syncStats struct {
	updated   int
	skipped   int
	failed    int
	cancelled bool
}

// Run executes a sync in the background and streams its events.
// The channel is closed when the run ends; callers must drain it.
func (e *Engine) Run(ctx context.Context, mode domain.Mode) <-chan domain.Event {
	events := make(chan domain.Event, 16)
	go func() {
		defer close(events)
		_ = e.Execute(ctx, mode, func(ev domain.Event) {
			events <- ev
		})
	}()
	return events
}

// Execute runs a sync synchronously, calling emit for every event.
// Row and batch failures are reported through emit only; the returned error
// is nil for completed and cancelled runs and the fatal cause otherwise.
func (e *Engine) Execute(ctx context.Context, mode domain.Mode, emit func(domain.Event)) error {
	fail := func(err error) error {
		e.logger.Error("Sync failed", zap.String("mode", string(mode)), zap.Error(err))
		emit(domain.ErrorEvent(err))
		return err
	}

	if mode != domain.ModeTracking && mode != domain.ModePayment {
		return fail(fmt.Errorf("%w: %q", domain.ErrInvalidMode, mode))
	}

	ledger, err := e.store.Load(e.path)
	if err != nil {
		return fail(fmt.Errorf("failed to load ledger: %w", err))
	}
	ledgerservice.EnsureColumns(ledger)

	total := ledger.Len()
	if total == 0 {
		return fail(domain.ErrNoRowsToProcess)
	}

	e.logger.Info("Sync started",
		zap.String("mode", string(mode)),
		zap.Int("rows", total),
	)

	progress := newProgressReporter(total, emit)
	var stats syncStats
	if mode == domain.ModeTracking {
		stats = e.syncTracking(ctx, ledger, progress, emit)
	} else {
		stats = e.syncPayment(ctx, ledger, progress, emit)
	}

	if err := e.store.Save(ledger, e.path); err != nil {
		return fail(fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err))
	}

	msg := resultMessage(mode, stats, progress.visited, total)
	e.logger.Info(msg,
		zap.Int("updated", stats.updated),
		zap.Int("skipped", stats.skipped),
		zap.Int("failed", stats.failed),
	)
	emit(domain.ResultEvent(msg))
	if !stats.cancelled {
		progress.complete()
	}
	return nil
}

// trackingSlot holds the outcome of one row within a tracking window.
type trackingSlot struct {
	skip    bool
	missing bool
	result  domain.TrackingResult
	err     error
}

// syncTracking fetches rows in windows of TrackingWorkers concurrent lookups
// and applies each window in ledger order.
func (e *Engine) syncTracking(ctx context.Context, l *ledgerdomain.Ledger, progress *progressReporter, emit func(domain.Event)) syncStats {
	var stats syncStats
	window := e.opts.TrackingWorkers

	for start := 0; start < l.Len(); start += window {
		if ctx.Err() != nil {
			stats.cancelled = true
			break
		}

		end := min(start+window, l.Len())
		slots := make([]trackingSlot, end-start)

		var g errgroup.Group
		g.SetLimit(window)
		for i := start; i < end; i++ {
			rec := l.Record(i)
			slot := &slots[i-start]
			switch {
			case rec.IsDelivered():
				slot.skip = true
			case rec.TrackingID == "":
				slot.missing = true
			default:
				id := rec.TrackingID
				g.Go(func() error {
					slot.result, slot.err = e.tracker.TrackOne(ctx, id)
					return nil
				})
			}
		}
		_ = g.Wait()

		for i := start; i < end; i++ {
			slot := slots[i-start]
			switch {
			case slot.skip:
				stats.skipped++
			case slot.missing:
				stats.failed++
				emit(domain.ErrorEvent(fmt.Errorf("%w: row %d: missing tracking id",
					domain.ErrRowEnrichmentFailed, ledgerdomain.SheetRow(i))))
			case slot.err != nil && ctx.Err() != nil && errors.Is(slot.err, ctx.Err()):
				// Interrupted by cancellation; the row was never really visited.
				stats.cancelled = true
				continue
			case slot.err != nil:
				stats.failed++
				emit(domain.ErrorEvent(fmt.Errorf("%w: row %d (%s): %v",
					domain.ErrRowEnrichmentFailed, ledgerdomain.SheetRow(i), l.Cell(i, ledgerdomain.ColumnTrackingID), slot.err)))
			case slot.result.IsEmpty():
				stats.skipped++
			default:
				if err := applyTracking(l, i, slot.result); err != nil {
					stats.failed++
					emit(domain.ErrorEvent(fmt.Errorf("%w: row %d: %v",
						domain.ErrRowEnrichmentFailed, ledgerdomain.SheetRow(i), err)))
				} else {
					stats.updated++
				}
			}
			progress.visit()
		}
	}

	return stats
}

// applyTracking writes each non-empty field independently.
func applyTracking(l *ledgerdomain.Ledger, row int, r domain.TrackingResult) error {
	if r.Status != "" {
		if err := l.SetCell(row, ledgerdomain.ColumnStatus, r.Status); err != nil {
			return err
		}
	}
	if r.Checkpoint != "" {
		if err := l.SetCell(row, ledgerdomain.ColumnRecentLocation, r.Checkpoint); err != nil {
			return err
		}
	}
	if r.BookingDate != "" {
		if err := l.SetCell(row, ledgerdomain.ColumnBookingDate, ledgerdomain.NormalizeBookingDate(r.BookingDate)); err != nil {
			return err
		}
	}
	return nil
}

// paymentBatch accumulates pending ids and the rows they came from.
type paymentBatch struct {
	ids      []string
	rows     map[string]int
	firstRow int
}

func (b *paymentBatch) add(id string, row int) {
	if len(b.ids) == 0 {
		b.firstRow = row
		b.rows = make(map[string]int)
	}
	b.ids = append(b.ids, id)
	b.rows[id] = row
}

func (b *paymentBatch) reset() {
	b.ids = nil
	b.rows = nil
}

// syncPayment looks up unpaid rows in batches and writes the settlement text back.
func (e *Engine) syncPayment(ctx context.Context, l *ledgerdomain.Ledger, progress *progressReporter, emit func(domain.Event)) syncStats {
	var stats syncStats
	var batch paymentBatch
	last := l.Len() - 1

	for i := 0; i <= last; i++ {
		if ctx.Err() != nil {
			stats.cancelled = true
			break
		}

		rec := l.Record(i)
		switch {
		case rec.PaymentReceived.IsPaid(), rec.TrackingID == "":
			stats.skipped++
		default:
			batch.add(rec.TrackingID, i)
		}

		if len(batch.ids) > 0 && (len(batch.ids) == e.opts.PaymentBatchSize || i == last) {
			if !e.flushPayments(ctx, l, &batch, &stats, emit) {
				stats.cancelled = true
				break
			}
		}
		progress.visit()
	}

	return stats
}

// flushPayments dispatches one batch. It returns false if the run was cancelled mid-call.
func (e *Engine) flushPayments(ctx context.Context, l *ledgerdomain.Ledger, batch *paymentBatch, stats *syncStats, emit func(domain.Event)) bool {
	defer batch.reset()

	results, err := e.payments.TrackBatch(ctx, strings.Join(batch.ids, ","))
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return false
		}
		stats.failed += len(batch.ids)
		emit(domain.ErrorEvent(fmt.Errorf("%w: batch starting at row %d: %v",
			domain.ErrBatchEnrichmentFailed, ledgerdomain.SheetRow(batch.firstRow), err)))
		return true
	}

	applied, rejected := 0, 0
	for id, res := range results {
		row, ok := batch.rows[id]
		if !ok {
			continue
		}
		state := ledgerdomain.NewPaymentState(res.Status, res.Date)
		if err := l.SetCell(row, ledgerdomain.ColumnPaymentReceived, state.String()); err != nil {
			rejected++
			emit(domain.ErrorEvent(fmt.Errorf("%w: row %d: %v",
				domain.ErrRowEnrichmentFailed, ledgerdomain.SheetRow(row), err)))
			continue
		}
		applied++
	}
	stats.updated += applied
	stats.failed += rejected
	stats.skipped += len(batch.ids) - applied - rejected
	return true
}

func resultMessage(mode domain.Mode, s syncStats, visited, total int) string {
	if s.cancelled {
		return fmt.Sprintf("%s sync cancelled after %d of %d rows: %d updated, %d skipped, %d failed",
			mode, visited, total, s.updated, s.skipped, s.failed)
	}
	return fmt.Sprintf("%s sync finished: %d updated, %d skipped, %d failed",
		mode, s.updated, s.skipped, s.failed)
}
