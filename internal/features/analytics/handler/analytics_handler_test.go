package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"parcel-ledger/internal/features/analytics/domain"
	ledgerdomain "parcel-ledger/internal/features/ledger/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReporter is a mock implementation of Reporter
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Summary(ctx context.Context) (*domain.SummaryReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SummaryReport), args.Error(1)
}

func (m *MockReporter) Breakdown(ctx context.Context) ([]domain.BucketShare, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BucketShare), args.Error(1)
}

func (m *MockReporter) Highlights(ctx context.Context) ([]domain.RowHighlight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RowHighlight), args.Error(1)
}

func setupApp(reporter *MockReporter) *fiber.App {
	app := fiber.New()
	h := NewAnalyticsHandler(reporter)
	app.Get("/ledger/summary", h.Summary)
	app.Get("/ledger/analytics", h.Analytics)
	app.Get("/ledger/highlights", h.Highlights)
	return app
}

func TestAnalyticsHandler_Summary(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		reporter := new(MockReporter)
		app := setupApp(reporter)
		reporter.On("Summary", mock.Anything).Return(&domain.SummaryReport{
			Summary: domain.Summary{
				Total:            decimal.NewFromInt(6000),
				Pending:          decimal.NewFromInt(6000),
				DeliveredPending: decimal.NewFromInt(6000),
			},
			PendingCount: 1,
		}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/ledger/summary", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "6000", body["total"])
		assert.Equal(t, "6000", body["delivered_pending"])
		assert.Equal(t, float64(1), body["pending_count"])
	})

	t.Run("MissingColumns", func(t *testing.T) {
		reporter := new(MockReporter)
		app := setupApp(reporter)
		reporter.On("Summary", mock.Anything).Return(nil, ledgerdomain.ErrMissingColumns).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/ledger/summary", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestAnalyticsHandler_Analytics(t *testing.T) {
	reporter := new(MockReporter)
	app := setupApp(reporter)
	reporter.On("Breakdown", mock.Anything).Return([]domain.BucketShare{
		{Bucket: domain.BucketReturn, Count: 1, Percent: 100, Emphasized: true},
	}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/ledger/analytics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var shares []domain.BucketShare
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&shares))
	require.Len(t, shares, 1)
	assert.True(t, shares[0].Emphasized)
}

func TestAnalyticsHandler_Highlights(t *testing.T) {
	reporter := new(MockReporter)
	app := setupApp(reporter)
	reporter.On("Highlights", mock.Anything).Return(nil, ledgerdomain.ErrNotFound).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/ledger/highlights", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
