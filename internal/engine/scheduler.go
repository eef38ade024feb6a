package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Warmer preloads store profiles into a cache.
type Warmer interface {
	Warm(ctx context.Context) (int, error)
}

// Scheduler runs periodic maintenance tasks.
type Scheduler struct {
	cron    *cron.Cron
	warmer  Warmer
	timeout time.Duration
	log     *slog.Logger
}

// NewScheduler creates a Scheduler that warms the profile cache every
// warmInterval. Each run is bounded by the interval itself.
func NewScheduler(
	warmer Warmer,
	warmInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if warmInterval <= 0 {
		return nil, fmt.Errorf("cache warm interval must be positive, got %s", warmInterval)
	}

	c := cron.New()

	s := &Scheduler{
		cron:    c,
		warmer:  warmer,
		timeout: warmInterval,
		log:     log,
	}

	if _, err := c.AddFunc(
		"@every "+warmInterval.String(),
		s.runCacheWarm,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// WarmNow runs one cache warm-up immediately. Used at startup so the first
// requests hit a warm cache.
func (s *Scheduler) WarmNow(ctx context.Context) {
	start := time.Now()
	n, err := s.warmer.Warm(ctx)
	if err != nil {
		s.log.Error("cache warm failed", "error", err, "written", n)
		return
	}
	s.log.Info("cache warmed", "profiles", n, "duration", time.Since(start))
}

func (s *Scheduler) runCacheWarm() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.log.Info("scheduled cache warm starting")
	s.WarmNow(ctx)
}
