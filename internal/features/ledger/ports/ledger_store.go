package ports

import (
	"context"

	"parcel-ledger/internal/features/ledger/domain"
)

// LedgerStore defines the persistence port for the tabular ledger file.
type LedgerStore interface {
	// Load reads the ledger at path. Returns domain.ErrNotFound when the file is absent.
	Load(path string) (*domain.Ledger, error)
	// Save replaces the ledger at path; readers never observe a partial file.
	Save(ledger *domain.Ledger, path string) error
	// Exists reports whether a ledger file is present at path.
	Exists(path string) bool
}

// BatchSource reads an import batch produced by the loadsheet extractor.
type BatchSource interface {
	// LoadBatch reads the batch workbook at path.
	LoadBatch(path string) (*domain.ImportBatch, error)
}

// LedgerLock serializes writers of one ledger file across processes.
// The enrichment run repository implements it, so imports and syncs share one lock.
type LedgerLock interface {
	// Lock acquires the lock on ledgerPath for holder. It returns false if someone else holds it.
	Lock(ctx context.Context, ledgerPath, holder string) (bool, error)
	// Unlock releases the lock if holder still holds it.
	Unlock(ctx context.Context, ledgerPath, holder string) error
}

// LedgerService defines the ledger operations exposed to handlers and the CLI.
type LedgerService interface {
	// Import merges batch into the ledger and persists it.
	Import(ctx context.Context, batch *domain.ImportBatch) (*domain.ImportResult, error)
	// ImportFile loads the batch workbook at path and imports it.
	ImportFile(ctx context.Context, path string) (*domain.ImportResult, error)
	// SortByBookingDate reorders the ledger rows by booking date and persists them.
	SortByBookingDate(ctx context.Context) (*domain.SortResult, error)
	// Load returns the current ledger.
	Load(ctx context.Context) (*domain.Ledger, error)
}
