package pipeline

import (
	"testing"
	"time"
)

func TestBackoffExponentialSchedule(t *testing.T) {
	p := DefaultBackoffPolicy()

	cases := []struct {
		retryCount int
		wantDelay  time.Duration
		wantFinal  bool
	}{
		{1, 5 * time.Minute, false},
		{2, 10 * time.Minute, false},
		{3, 0, true},
		{4, 0, true},
	}
	for _, tc := range cases {
		delay, terminal := p.Compute(tc.retryCount)
		if terminal != tc.wantFinal {
			t.Errorf("Compute(%d): terminal = %v, want %v", tc.retryCount, terminal, tc.wantFinal)
		}
		if delay != tc.wantDelay {
			t.Errorf("Compute(%d): delay = %s, want %s", tc.retryCount, delay, tc.wantDelay)
		}
	}
}

func TestBackoffFixedDelayWithFactorOne(t *testing.T) {
	p := BackoffPolicy{MaxRetries: 3, BaseDelay: 5 * time.Minute, Factor: 1.0}

	for retryCount := 1; retryCount < p.MaxRetries; retryCount++ {
		delay, terminal := p.Compute(retryCount)
		if terminal {
			t.Fatalf("Compute(%d): unexpectedly terminal", retryCount)
		}
		if delay != 5*time.Minute {
			t.Errorf("Compute(%d): delay = %s, want 5m", retryCount, delay)
		}
	}
}

func TestBackoffFactorBelowOneClamped(t *testing.T) {
	p := BackoffPolicy{MaxRetries: 5, BaseDelay: time.Minute, Factor: 0.25}

	delay, _ := p.Compute(3)
	if delay < time.Minute {
		t.Errorf("delay = %s, want at least the base delay", delay)
	}
}
