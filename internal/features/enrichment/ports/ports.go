package ports

import (
	"context"

	"parcel-ledger/internal/features/enrichment/domain"
)

// TrackingProvider fetches the current tracking state of one parcel.
type TrackingProvider interface {
	TrackOne(ctx context.Context, trackingID string) (domain.TrackingResult, error)
}

// PaymentProvider fetches settlement records for a comma-separated list of ids.
// Ids the courier does not know are absent from the result.
type PaymentProvider interface {
	TrackBatch(ctx context.Context, trackingIDs string) (map[string]domain.PaymentResult, error)
}

// RunRepository persists sync runs and the per-ledger run lock.
type RunRepository interface {
	Save(ctx context.Context, run *domain.Run) error
	Get(ctx context.Context, id string) (*domain.Run, error)
	// Lock acquires the ledger lock for runID. It returns false if another run holds it.
	Lock(ctx context.Context, ledgerPath, runID string) (bool, error)
	// Extend renews the lock TTL while runID holds it and reports whether it still does.
	Extend(ctx context.Context, ledgerPath, runID string) (bool, error)
	// Unlock releases the ledger lock if runID still holds it.
	Unlock(ctx context.Context, ledgerPath, runID string) error
}

// SyncService starts and inspects background sync runs.
type SyncService interface {
	Start(ctx context.Context, mode domain.Mode) (*domain.Run, error)
	Get(ctx context.Context, id string) (*domain.Run, error)
}
