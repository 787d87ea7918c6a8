package service

import (
	"fmt"
	"math"
	"sort"

	"parcel-ledger/internal/features/analytics/domain"
	ledgerdomain "parcel-ledger/internal/features/ledger/domain"

	"github.com/shopspring/decimal"
)

// Summarize computes the COD totals of the ledger. Any unparseable amount on
// a counted row fails the whole computation.
func Summarize(l *ledgerdomain.Ledger) (domain.Summary, error) {
	s := domain.Summary{Total: decimal.Zero, Pending: decimal.Zero, DeliveredPending: decimal.Zero}

	if err := l.RequireColumns(ledgerdomain.ColumnCODAmount, ledgerdomain.ColumnPaymentReceived, ledgerdomain.ColumnRecentLocation); err != nil {
		return s, err
	}

	for i := range l.Rows {
		rec := l.Record(i)
		if domain.IsReturn(rec.RecentLocation) {
			continue
		}

		amount, err := rec.COD()
		if err != nil {
			return s, fmt.Errorf("row %d (%s): %w", ledgerdomain.SheetRow(i), rec.TrackingID, err)
		}
		s.Total = s.Total.Add(amount)

		if rec.PaymentReceived.IsReconciled() {
			continue
		}
		s.Pending = s.Pending.Add(amount)
		if rec.Status == "Delivered" {
			s.DeliveredPending = s.DeliveredPending.Add(amount)
		}
	}

	return s, nil
}

// PendingCount counts rows whose payment is the "-" placeholder.
func PendingCount(l *ledgerdomain.Ledger) (int, error) {
	if err := l.RequireColumns(ledgerdomain.ColumnPaymentReceived); err != nil {
		return 0, err
	}

	count := 0
	for i := range l.Rows {
		if l.Cell(i, ledgerdomain.ColumnPaymentReceived) == ledgerdomain.PaymentPlaceholder {
			count++
		}
	}
	return count, nil
}

// Breakdown counts rows per status bucket, largest first, ties by name.
func Breakdown(l *ledgerdomain.Ledger) ([]domain.BucketShare, error) {
	if err := l.RequireColumns(ledgerdomain.ColumnRecentLocation); err != nil {
		return nil, err
	}

	counts := make(map[domain.Bucket]int)
	for i := range l.Rows {
		counts[domain.Classify(l.Cell(i, ledgerdomain.ColumnRecentLocation))]++
	}

	shares := make([]domain.BucketShare, 0, len(counts))
	total := l.Len()
	for bucket, count := range counts {
		shares = append(shares, domain.BucketShare{
			Bucket:     bucket,
			Count:      count,
			Percent:    math.Round(float64(count)*1000/float64(total)) / 10,
			Emphasized: bucket == domain.BucketReturn,
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Bucket < shares[j].Bucket
	})
	return shares, nil
}

// Highlights returns the highlight decisions of every row.
func Highlights(l *ledgerdomain.Ledger) []domain.RowHighlight {
	out := make([]domain.RowHighlight, 0, l.Len())
	for i := range l.Rows {
		h := domain.Highlight(l.Record(i))
		h.Row = ledgerdomain.SheetRow(i)
		out = append(out, h)
	}
	return out
}
