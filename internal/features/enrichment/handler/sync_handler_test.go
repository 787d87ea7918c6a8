package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parcel-ledger/internal/features/enrichment/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSyncService is a mock implementation of ports.SyncService
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) Start(ctx context.Context, mode domain.Mode) (*domain.Run, error) {
	args := m.Called(ctx, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Run), args.Error(1)
}

func (m *MockSyncService) Get(ctx context.Context, id string) (*domain.Run, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Run), args.Error(1)
}

func setupApp(service *MockSyncService) *fiber.App {
	app := fiber.New()
	h := NewSyncHandler(service)
	app.Post("/sync/:mode", h.StartRun)
	app.Get("/sync/runs/:id", h.GetRun)
	return app
}

func TestSyncHandler_StartRun(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		mockService := new(MockSyncService)
		app := setupApp(mockService)
		run := domain.NewRun("run-1", domain.ModeTracking, time.Now())
		mockService.On("Start", mock.Anything, domain.ModeTracking).Return(run, nil).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/sync/tracking", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)

		var body domain.Run
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "run-1", body.ID)
		assert.Equal(t, domain.RunRunning, body.State)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidMode", func(t *testing.T) {
		mockService := new(MockSyncService)
		app := setupApp(mockService)

		resp, err := app.Test(httptest.NewRequest("POST", "/sync/refund", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
	})

	t.Run("InProgress", func(t *testing.T) {
		mockService := new(MockSyncService)
		app := setupApp(mockService)
		mockService.On("Start", mock.Anything, domain.ModePayment).Return(nil, domain.ErrRunInProgress).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/sync/payment", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("InternalError", func(t *testing.T) {
		mockService := new(MockSyncService)
		app := setupApp(mockService)
		mockService.On("Start", mock.Anything, domain.ModePayment).Return(nil, errors.New("redis down")).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/sync/payment", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestSyncHandler_GetRun(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockService := new(MockSyncService)
		app := setupApp(mockService)
		run := domain.NewRun("run-1", domain.ModePayment, time.Now())
		run.Apply(domain.ProgressEvent(40))
		mockService.On("Get", mock.Anything, "run-1").Return(run, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/sync/runs/run-1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body domain.Run
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 40, body.Progress)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockSyncService)
		app := setupApp(mockService)
		mockService.On("Get", mock.Anything, "nope").Return(nil, domain.ErrRunNotFound).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/sync/runs/nope", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
