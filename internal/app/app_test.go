package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parcel-ledger/internal/core/cache"
	"parcel-ledger/internal/core/config"
	enrichmentdomain "parcel-ledger/internal/features/enrichment/domain"
	ledgerdomain "parcel-ledger/internal/features/ledger/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, courierURL string) *config.AppConfig {
	t.Helper()
	return &config.AppConfig{
		Environment: "test",
		ServerPort:  0,
		Ledger:      config.LedgerConfig{Dir: t.TempDir(), File: "final.xlsx"},
		Leopard: config.LeopardConfig{
			BaseURL:     courierURL,
			APIKey:      "key",
			APIPassword: "secret",
			Timeout:     5 * time.Second,
		},
		Sync:  config.SyncConfig{TrackingWorkers: 2, PaymentBatchSize: 50},
		Redis: config.RedisConfig{RunTTL: time.Hour, LockTTL: time.Hour},
	}
}

func TestApp_ImportSyncSummarize(t *testing.T) {
	courier := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":1,"packet_list":[{"booked_packet_status":"Delivered","booking_date":"2024-01-01","Tracking Detail":[{"Status":"Delivered"}]}]}`))
	}))
	defer courier.Close()

	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer c.Close()

	a := New(testConfig(t, courier.URL))
	srv, coordinator := a.NewServer(c)
	defer coordinator.Close()

	batch := ledgerdomain.ImportBatch{
		Columns: ledgerdomain.BatchColumns,
		Rows:    [][]string{{"1", "A", "Lahore", "Shop", "1", "Ayesha", "ORD-1", "0.5", "6000", ""}},
	}
	body, err := json.Marshal(batch)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/ledger/import", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.App.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = srv.App.Test(httptest.NewRequest("POST", "/sync/tracking", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var run enrichmentdomain.Run
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
	coordinator.Wait()

	resp, err = srv.App.Test(httptest.NewRequest("GET", "/sync/runs/"+run.ID, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
	assert.Equal(t, enrichmentdomain.RunCompleted, run.State)
	assert.Equal(t, 100, run.Progress)

	resp, err = srv.App.Test(httptest.NewRequest("GET", "/ledger/summary", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, "6000", summary["total"])
	assert.Equal(t, "6000", summary["delivered_pending"])
}

func TestApp_SummaryWithoutLedger(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer c.Close()

	srv, coordinator := New(testConfig(t, "http://127.0.0.1:1")).NewServer(c)
	defer coordinator.Close()

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/ledger/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func importBatchRequest(t *testing.T, rows ...[]string) *http.Request {
	t.Helper()
	body, err := json.Marshal(ledgerdomain.ImportBatch{Columns: ledgerdomain.BatchColumns, Rows: rows})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/ledger/import", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestApp_WritesRejectedDuringSync(t *testing.T) {
	release := make(chan struct{})
	courier := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
			return
		}
		w.Write([]byte(`{"status":1,"packet_list":[{"booked_packet_status":"Dispatched","Tracking Detail":[{"Status":"Dispatched"}]}]}`))
	}))
	defer courier.Close()

	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer c.Close()

	a := New(testConfig(t, courier.URL))
	srv, coordinator := a.NewServer(c)
	defer coordinator.Close()

	resp, err := srv.App.Test(importBatchRequest(t, []string{"1", "A", "Lahore", "Shop", "1", "Ayesha", "ORD-1", "0.5", "6000", ""}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = srv.App.Test(httptest.NewRequest("POST", "/sync/tracking", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	// The run holds the ledger until the courier answers.
	resp, err = srv.App.Test(importBatchRequest(t, []string{"2", "B", "Karachi", "Shop", "1", "Bilal", "ORD-2", "0.5", "100", ""}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, err = srv.App.Test(httptest.NewRequest("POST", "/ledger/sort", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	close(release)
	coordinator.Wait()

	resp, err = srv.App.Test(importBatchRequest(t, []string{"2", "B", "Karachi", "Shop", "1", "Bilal", "ORD-2", "0.5", "100", ""}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	l, err := a.Ledger.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 1}, l.TrackingIDs())
	assert.Equal(t, "Dispatched", l.Cell(0, ledgerdomain.ColumnStatus))
}
