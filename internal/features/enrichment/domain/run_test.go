package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Tracking")
	require.NoError(t, err)
	assert.Equal(t, ModeTracking, m)

	m, err = ParseMode(" payment ")
	require.NoError(t, err)
	assert.Equal(t, ModePayment, m)

	_, err = ParseMode("refund")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestRun_Apply(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	r := NewRun("run-1", ModeTracking, now)

	r.Apply(ProgressEvent(40))
	r.Apply(ProgressEvent(20))
	r.Apply(ErrorEvent(errors.New("row 3: timeout")))
	r.Apply(ResultEvent("tracking sync finished"))
	r.Apply(ProgressEvent(100))
	r.Finish(nil, now.Add(time.Minute))

	assert.Equal(t, 100, r.Progress)
	assert.Equal(t, []string{"row 3: timeout"}, r.Errors)
	assert.Equal(t, "tracking sync finished", r.Result)
	assert.Equal(t, RunCompleted, r.State)
	require.NotNil(t, r.FinishedAt)
	assert.True(t, r.IsFinished())
}

func TestRun_FinishFailed(t *testing.T) {
	r := NewRun("run-2", ModePayment, time.Now())
	r.Finish(ErrPersistenceFailed, time.Now())

	assert.Equal(t, RunFailed, r.State)
	assert.Equal(t, ErrPersistenceFailed.Error(), r.Result)
}

func TestTrackingResult_IsEmpty(t *testing.T) {
	assert.True(t, TrackingResult{}.IsEmpty())
	assert.False(t, TrackingResult{BookingDate: "01/01/2024"}.IsEmpty())
}
