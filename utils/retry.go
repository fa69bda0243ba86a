package utils

import (
	"fmt"
	"time"
)

// Backoff retries a flaky operation with doubling delays. Browser
// navigations are the main customer: the target sites intermittently time
// out under load and usually succeed on the next try.
type Backoff struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Logger      *Logger
}

// Do runs fn until it succeeds or the attempt budget is spent. The label
// names the operation in log lines and in the final error.
func (b *Backoff) Do(label string, fn func() error) error {
	attempts := b.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		delay := b.delayFor(attempt)
		b.Logger.Warn("[retry] %s failed (attempt %d/%d): %v, next try in %v",
			label, attempt, attempts, lastErr, delay)
		time.Sleep(delay)
	}

	return fmt.Errorf("%s failed after %d attempts: %w", label, attempts, lastErr)
}

func (b *Backoff) delayFor(attempt int) time.Duration {
	delay := b.BaseDelay << (attempt - 1)
	if b.MaxDelay > 0 && delay > b.MaxDelay {
		delay = b.MaxDelay
	}
	return delay
}
