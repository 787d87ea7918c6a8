package service

import (
	"context"
	"testing"

	"parcel-ledger/internal/features/analytics/domain"
	ledgerdomain "parcel-ledger/internal/features/ledger/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row is id, status, location, cod, payment.
func ledgerOf(rows ...[5]string) *ledgerdomain.Ledger {
	l := ledgerdomain.New([]string{
		ledgerdomain.ColumnTrackingID,
		ledgerdomain.ColumnRecentLocation,
		ledgerdomain.ColumnStatus,
		ledgerdomain.ColumnCODAmount,
		ledgerdomain.ColumnBookingDate,
		ledgerdomain.ColumnPaymentReceived,
	})
	for _, r := range rows {
		l.AppendRow([]string{r[0], r[2], r[1], r[3], "", r[4]})
	}
	return l
}

func TestSummarize_DeliveredScenario(t *testing.T) {
	l := ledgerOf([5]string{"A", "Delivered", "Delivered", "6000", ""})

	s, err := Summarize(l)
	require.NoError(t, err)
	assert.Equal(t, "6000", s.Total.String())
	assert.Equal(t, "6000", s.Pending.String())
	assert.Equal(t, "6000", s.DeliveredPending.String())
}

func TestSummarize_ExcludesReturnsAndReconciled(t *testing.T) {
	l := ledgerOf(
		[5]string{"A", "Delivered", "Delivered", "1,000", "Paid 2024-01-05"},
		[5]string{"B", "Delivered", "Delivered", "250.50", "-"},
		[5]string{"C", "Pending", "Pending", "300", ""},
		[5]string{"D", "Returned", "Returned to shipper", "9999", ""},
		[5]string{"E", "Returned", "Being Return", "not-a-number", ""},
		[5]string{"F", "Pickup", "Pickup Request Sent", "1", "-"},
		[5]string{"G", "Ready", "Ready for Return", "1", "-"},
		[5]string{"H", "delivered", "Dispatched", "50", "Pending 2024-02-01"},
	)

	s, err := Summarize(l)
	require.NoError(t, err)
	assert.Equal(t, "1600.5", s.Total.String())
	assert.Equal(t, "550.5", s.Pending.String())
	assert.Equal(t, "250.5", s.DeliveredPending.String())
}

func TestSummarize_Errors(t *testing.T) {
	_, err := Summarize(ledgerdomain.New([]string{ledgerdomain.ColumnTrackingID, ledgerdomain.ColumnCODAmount}))
	assert.ErrorIs(t, err, ledgerdomain.ErrMissingColumns)

	_, err = Summarize(ledgerOf(
		[5]string{"A", "", "", "100", ""},
		[5]string{"B", "", "Dispatched", "", ""},
	))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestPendingCount(t *testing.T) {
	l := ledgerOf(
		[5]string{"A", "", "", "1", "-"},
		[5]string{"B", "", "", "1", ""},
		[5]string{"C", "", "", "1", "-"},
		[5]string{"D", "", "", "1", "Paid 2024-01-01"},
	)

	n, err := PendingCount(l)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = PendingCount(ledgerdomain.New([]string{ledgerdomain.ColumnTrackingID}))
	assert.ErrorIs(t, err, ledgerdomain.ErrMissingColumns)
}

func TestBreakdown(t *testing.T) {
	l := ledgerOf(
		[5]string{"A", "", "Delivered", "1", ""},
		[5]string{"B", "", "Delivered", "1", ""},
		[5]string{"C", "", "Being Return", "1", ""},
		[5]string{"D", "", "Dispatched", "1", ""},
		[5]string{"E", "", "Somewhere", "1", ""},
		[5]string{"F", "", "Pending", "1", ""},
	)

	shares, err := Breakdown(l)
	require.NoError(t, err)
	require.Len(t, shares, 4)

	assert.Equal(t, domain.BucketShare{Bucket: domain.BucketDelivered, Count: 2, Percent: 33.3}, shares[0])
	assert.Equal(t, domain.BucketShare{Bucket: domain.BucketInTransit, Count: 2, Percent: 33.3}, shares[1])
	assert.Equal(t, domain.BucketShare{Bucket: domain.BucketPending, Count: 1, Percent: 16.7}, shares[2])
	assert.Equal(t, domain.BucketShare{Bucket: domain.BucketReturn, Count: 1, Percent: 16.7, Emphasized: true}, shares[3])
}

func TestBreakdown_Empty(t *testing.T) {
	shares, err := Breakdown(ledgerOf())
	require.NoError(t, err)
	assert.Empty(t, shares)
}

// staticReader returns a fixed ledger.
type staticReader struct {
	ledger *ledgerdomain.Ledger
	err    error
}

func (s staticReader) Load(ctx context.Context) (*ledgerdomain.Ledger, error) {
	return s.ledger, s.err
}

func TestAnalyticsService(t *testing.T) {
	svc := NewAnalyticsService(staticReader{ledger: ledgerOf(
		[5]string{"A", "Delivered", "Delivered", "6000", "-"},
		[5]string{"B", "", "Ready for Return", "200", "-"},
	)})
	ctx := context.Background()

	report, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "6000", report.Total.String())
	assert.Equal(t, 2, report.PendingCount)

	highlights, err := svc.Highlights(ctx)
	require.NoError(t, err)
	require.Len(t, highlights, 2)
	assert.Equal(t, 2, highlights[0].Row)
	assert.Equal(t, domain.LevelAttention, highlights[0].Amount)
	assert.Equal(t, domain.LevelCritical, highlights[1].Location)

	_, err = NewAnalyticsService(staticReader{err: ledgerdomain.ErrNotFound}).Breakdown(ctx)
	assert.ErrorIs(t, err, ledgerdomain.ErrNotFound)
}
