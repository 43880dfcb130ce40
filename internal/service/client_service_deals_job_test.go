// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-deal-watch/internal/logger"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyDealsService counts Refresh calls and optionally blocks until released.
type spyDealsService struct {
	calls    atomic.Int64
	inFlight atomic.Int64
	peak     atomic.Int64
	err      error
	release  chan struct{}
}

func (s *spyDealsService) Refresh(ctx context.Context) error {
	s.calls.Add(1)
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}

	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.err
}

const pollInterval = 300000 * time.Millisecond

func newMockRefresher(spy *spyDealsService) (*dealsRefresher, *clock.Mock) {
	clk := clock.NewMock()
	job := NewDealsRefresher(spy, pollInterval, clk, logger.Nop()).(*dealsRefresher)
	return job, clk
}

// waitCalls waits until spy has seen exactly want calls.
func waitCalls(t *testing.T, spy *spyDealsService, want int64) {
	t.Helper()
	require.Eventually(t, func() bool { return spy.calls.Load() == want }, time.Second, time.Millisecond,
		"expected %d refreshes, got %d", want, spy.calls.Load())
}

// ── NewDealsRefresher ────────────────────────────────────────────────────────

func TestNewDealsRefresher_Defaults(t *testing.T) {
	job := NewDealsRefresher(&spyDealsService{}, 0, nil, logger.Nop()).(*dealsRefresher)

	assert.Equal(t, DefaultRefreshInterval, job.interval)
	assert.Equal(t, 5*time.Minute, job.interval)
	assert.NotNil(t, job.clock)
}

func TestNewDealsRefresher_NegativeInterval(t *testing.T) {
	job := NewDealsRefresher(&spyDealsService{}, -time.Second, clock.NewMock(), logger.Nop()).(*dealsRefresher)
	assert.Equal(t, DefaultRefreshInterval, job.interval)
}

// ── cadence with a mock clock ────────────────────────────────────────────────

func TestDealsRefresher_NoRefreshBeforeFirstInterval(t *testing.T) {
	spy := &spyDealsService{}
	job, clk := newMockRefresher(spy)

	job.Start(context.Background())
	defer job.Stop()

	clk.Add(pollInterval - time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestDealsRefresher_OneRefreshPerInterval(t *testing.T) {
	spy := &spyDealsService{}
	job, clk := newMockRefresher(spy)

	job.Start(context.Background())
	defer job.Stop()

	clk.Add(pollInterval)
	waitCalls(t, spy, 1)

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int64(1), spy.calls.Load(), "a single interval must trigger exactly one refresh")
}

func TestDealsRefresher_ThreeIntervalsThreeRefreshes(t *testing.T) {
	spy := &spyDealsService{}
	job, clk := newMockRefresher(spy)

	job.Start(context.Background())
	defer job.Stop()

	// t = 300000, 600000, 900000
	for i := int64(1); i <= 3; i++ {
		clk.Add(pollInterval)
		waitCalls(t, spy, i)
	}

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int64(3), spy.calls.Load())
}

func TestDealsRefresher_FailedRefreshDoesNotStopJob(t *testing.T) {
	spy := &spyDealsService{err: assert.AnError}
	job, clk := newMockRefresher(spy)

	job.Start(context.Background())
	defer job.Stop()

	for i := int64(1); i <= 3; i++ {
		clk.Add(pollInterval)
		waitCalls(t, spy, i)
	}
}

func TestDealsRefresher_RefreshesOverlap(t *testing.T) {
	spy := &spyDealsService{release: make(chan struct{})}
	job, clk := newMockRefresher(spy)

	job.Start(context.Background())

	clk.Add(pollInterval)
	waitCalls(t, spy, 1)
	clk.Add(pollInterval)
	waitCalls(t, spy, 2)

	assert.Equal(t, int64(2), spy.peak.Load(), "a slow refresh must not hold back the next tick")

	close(spy.release)
	job.Stop()
	assert.Equal(t, int64(0), spy.inFlight.Load())
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestDealsRefresher_Stop_NoTicksAfterStop(t *testing.T) {
	spy := &spyDealsService{}
	job, clk := newMockRefresher(spy)

	job.Start(context.Background())
	clk.Add(pollInterval)
	waitCalls(t, spy, 1)
	job.Stop()

	clk.Add(3 * pollInterval)
	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, int64(1), spy.calls.Load(), "no refreshes are expected after Stop")
}

func TestDealsRefresher_Stop_CancelsInFlight(t *testing.T) {
	spy := &spyDealsService{release: make(chan struct{})}
	job, clk := newMockRefresher(spy)

	job.Start(context.Background())
	clk.Add(pollInterval)
	waitCalls(t, spy, 1)

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung with a refresh in flight")
	}
	assert.Equal(t, int64(0), spy.inFlight.Load())
}

func TestDealsRefresher_Stop_BeforeStart_NoPanic(t *testing.T) {
	job, _ := newMockRefresher(&spyDealsService{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestDealsRefresher_DoubleStop_NoPanic(t *testing.T) {
	job, _ := newMockRefresher(&spyDealsService{})

	job.Start(context.Background())
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestDealsRefresher_Restart_KeepsSingleTicker(t *testing.T) {
	spy := &spyDealsService{}
	job, clk := newMockRefresher(spy)

	job.Start(context.Background())
	job.Start(context.Background())
	defer job.Stop()

	clk.Add(pollInterval)
	waitCalls(t, spy, 1)

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int64(1), spy.calls.Load(), "restart must not leave the previous ticker running")
}

func TestDealsRefresher_ParentContextCancel(t *testing.T) {
	spy := &spyDealsService{}
	job, clk := newMockRefresher(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after parent context cancellation")
	}

	clk.Add(pollInterval)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int64(0), spy.calls.Load())
}

// ── wall clock ───────────────────────────────────────────────────────────────

func TestDealsRefresher_WallClock(t *testing.T) {
	spy := &spyDealsService{}
	job := NewDealsRefresher(spy, 10*time.Millisecond, clock.New(), logger.Nop())

	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Refresh should run several times, got %d", got)
}
