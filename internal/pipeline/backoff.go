// Package pipeline implements the document processing state machine:
// worker sweeps, stuck-job reaping, retry scheduling, and application of
// extracted data to case forms. All components coordinate solely through
// the document store's status and version columns; there is no in-process
// shared state between sweeps.
package pipeline

import (
	"math"
	"time"
)

// BackoffPolicy is the single authority for "increment retry, compute next
// delay, check against max". Every failure site (worker, reaper, retry
// scheduler) consults it so the pieces cannot drift apart.
type BackoffPolicy struct {
	// MaxRetries is the retry ceiling. A document whose retry count
	// reaches it must be in a terminal state, never queued again.
	MaxRetries int
	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration
	// Factor multiplies the delay on each subsequent retry. 1.0 gives
	// the fixed-delay schedule, 2.0 the exponential one.
	Factor float64
}

// DefaultBackoffPolicy mirrors the production defaults: 3 retries,
// 5 minutes base, doubling.
func DefaultBackoffPolicy() BackoffPolicy {
	return BackoffPolicy{MaxRetries: 3, BaseDelay: 5 * time.Minute, Factor: 2.0}
}

// Compute takes the retry count after incrementing for the failure at hand
// and returns the delay until the next attempt, or terminal=true when the
// budget is exhausted and the document must be parked instead.
func (p BackoffPolicy) Compute(retryCount int) (delay time.Duration, terminal bool) {
	if retryCount >= p.MaxRetries {
		return 0, true
	}
	factor := p.Factor
	if factor < 1.0 {
		factor = 1.0
	}
	scaled := float64(p.BaseDelay) * math.Pow(factor, float64(retryCount-1))
	return time.Duration(scaled), false
}
