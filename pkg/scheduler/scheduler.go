// Package scheduler drives periodic feed processing cycles
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/cycler.go -pkg mocks -skip-ensure -fmt goimports . Cycler

// Cycler runs one full processing pass
type Cycler interface {
	ProcessAll(ctx context.Context)
}

// Scheduler runs a Cycler at a fixed interval. A tick that fires while
// the previous cycle is still running is skipped, cycles never overlap.
type Scheduler struct {
	cycler   Cycler
	interval time.Duration

	running sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewScheduler creates a scheduler running cycler every interval
func NewScheduler(cycler Cycler, interval time.Duration) *Scheduler {
	return &Scheduler{cycler: cycler, interval: interval}
}

// Start begins periodic processing. The first cycle runs immediately,
// subsequent ones on the ticker. Non-blocking, use Stop to shut down.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		lgr.Printf("[INFO] scheduler started, interval: %v", s.interval)

		s.tick(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				lgr.Printf("[INFO] scheduler stopped")
				return
			case <-ticker.C:
				s.tick(ctx)
			}
		}
	}()
}

// tick runs one cycle unless the previous one is still in flight
func (s *Scheduler) tick(ctx context.Context) {
	if !s.running.TryLock() {
		lgr.Printf("[WARN] previous cycle still running, skipping tick")
		return
	}
	defer s.running.Unlock()

	s.cycler.ProcessAll(ctx)
}

// RunNow triggers one cycle outside the ticker, subject to the same
// no-overlap rule as scheduled ticks
func (s *Scheduler) RunNow(ctx context.Context) {
	s.tick(ctx)
}

// Stop cancels the run loop and waits for an in-flight cycle to finish
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}
