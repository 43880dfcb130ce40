package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-deal-watch/internal/logger"
	"github.com/benbjohnson/clock"
)

// DefaultRefreshInterval is used when a non-positive interval is supplied.
const DefaultRefreshInterval = 300000 * time.Millisecond

type dealsRefresher struct {
	dealsService DealsService
	interval     time.Duration
	clock        clock.Clock

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDealsRefresher creates a DealsRefresher that calls dealsService.Refresh
// every interval, measured on clk. A non-positive interval falls back to
// [DefaultRefreshInterval]; a nil clk uses the wall clock. The job is idle
// until Start is called.
func NewDealsRefresher(dealsService DealsService, interval time.Duration, clk clock.Clock, logger *logger.Logger) DealsRefresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	if clk == nil {
		clk = clock.New()
	}

	return &dealsRefresher{
		dealsService: dealsService,
		interval:     interval,
		clock:        clk,
		logger:       logger,
	}
}

// Start implements DealsRefresher. Every tick launches its own refresh
// goroutine: a slow refresh never delays the next tick, so refreshes may
// overlap and the one that finishes last is rendered last.
func (j *dealsRefresher) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	ticker := j.clock.Ticker(j.interval)
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", j.interval).Msg("deals refresher started")

	go func() {
		defer j.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-ticker.C:
				j.wg.Add(1)
				go j.refresh(jobCtx)
			}
		}
	}()
}

func (j *dealsRefresher) refresh(ctx context.Context) {
	defer j.wg.Done()

	err := j.dealsService.Refresh(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		j.logger.Debug().Msg("deals refresh cancelled")
	default:
		// dropped: the next tick proceeds as scheduled
		j.logger.Warn().Err(err).Msg("deals refresh failed")
	}
}

// Stop implements DealsRefresher.
func (j *dealsRefresher) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
