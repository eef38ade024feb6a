package extract

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily LLM call quota is exhausted.
var ErrDailyLimitReached = errors.New("daily LLM call limit reached")

// RateLimitedBackend wraps an LLMBackend with a token bucket for the call
// rate and a rolling 24-hour quota. The window resets 24 hours after the
// first call in it.
type RateLimitedBackend struct {
	next     LLMBackend
	limiter  *rate.Limiter
	maxDaily int64

	mu      sync.Mutex
	daily   int64
	resetAt time.Time
	nowFunc func() time.Time
}

// RateLimitOption configures the RateLimitedBackend.
type RateLimitOption func(*RateLimitedBackend)

// WithRateLimitNowFunc overrides the time function for testing.
func WithRateLimitNowFunc(f func() time.Time) RateLimitOption {
	return func(r *RateLimitedBackend) {
		r.nowFunc = f
	}
}

// NewRateLimitedBackend wraps next. maxDaily <= 0 disables the daily quota.
func NewRateLimitedBackend(
	next LLMBackend,
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimitOption,
) *RateLimitedBackend {
	if burst < 1 {
		burst = 1
	}
	r := &RateLimitedBackend{
		next:     next,
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the wrapped backend's name.
func (r *RateLimitedBackend) Name() string {
	return r.next.Name()
}

// Generate waits for a token and a daily slot, then calls the wrapped backend.
// A slot is consumed even when the wrapped call fails.
func (r *RateLimitedBackend) Generate(
	ctx context.Context,
	req GenerateRequest,
) (GenerateResponse, error) {
	if err := r.reserve(); err != nil {
		return GenerateResponse{}, err
	}
	if err := r.limiter.Wait(ctx); err != nil {
		r.release()
		return GenerateResponse{}, fmt.Errorf("rate limiter wait: %w", err)
	}
	return r.next.Generate(ctx, req)
}

func (r *RateLimitedBackend) reserve() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	if r.resetAt.IsZero() || now.After(r.resetAt) {
		r.daily = 0
		r.resetAt = now.Add(24 * time.Hour)
	}

	if r.maxDaily > 0 && r.daily >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.daily, r.maxDaily)
	}
	r.daily++
	return nil
}

func (r *RateLimitedBackend) release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.daily > 0 {
		r.daily--
	}
}

// MaxDaily returns the configured daily quota. Zero or less means unlimited.
func (r *RateLimitedBackend) MaxDaily() int64 {
	return r.maxDaily
}

// DailyCount returns the number of calls in the current window.
func (r *RateLimitedBackend) DailyCount() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.daily
}

// Remaining returns the calls left in the current window, or -1 when the
// daily quota is disabled.
func (r *RateLimitedBackend) Remaining() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.maxDaily <= 0 {
		return -1
	}
	return max(r.maxDaily-r.daily, 0)
}

// ResetAt returns when the current window expires. Zero before the first call.
func (r *RateLimitedBackend) ResetAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetAt
}
