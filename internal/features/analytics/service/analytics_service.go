package service

import (
	"context"

	"parcel-ledger/internal/features/analytics/domain"
	ledgerdomain "parcel-ledger/internal/features/ledger/domain"
)

// LedgerReader loads the current ledger. The ledger service implements it.
type LedgerReader interface {
	Load(ctx context.Context) (*ledgerdomain.Ledger, error)
}

// AnalyticsService derives read-only reports from the ledger.
type AnalyticsService struct {
	ledgers LedgerReader
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(ledgers LedgerReader) *AnalyticsService {
	return &AnalyticsService{
		ledgers: ledgers,
	}
}

// Summary returns the payment aggregates and the placeholder count.
func (s *AnalyticsService) Summary(ctx context.Context) (*domain.SummaryReport, error) {
	l, err := s.ledgers.Load(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := Summarize(l)
	if err != nil {
		return nil, err
	}
	pending, err := PendingCount(l)
	if err != nil {
		return nil, err
	}

	return &domain.SummaryReport{Summary: summary, PendingCount: pending}, nil
}

// Breakdown returns the status bucket shares.
func (s *AnalyticsService) Breakdown(ctx context.Context) ([]domain.BucketShare, error) {
	l, err := s.ledgers.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Breakdown(l)
}

// Highlights returns per-row highlight decisions.
func (s *AnalyticsService) Highlights(ctx context.Context) ([]domain.RowHighlight, error) {
	l, err := s.ledgers.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Highlights(l), nil
}
