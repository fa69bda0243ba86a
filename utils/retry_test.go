package utils

import (
	"errors"
	"testing"
	"time"
)

func TestBackoffSucceedsAfterFailures(t *testing.T) {
	b := &Backoff{MaxAttempts: 3, BaseDelay: time.Millisecond, Logger: NewLogger(false)}

	calls := 0
	err := b.Do("navigate", func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls: got %d, want 3", calls)
	}
}

func TestBackoffExhaustsBudget(t *testing.T) {
	b := &Backoff{MaxAttempts: 2, BaseDelay: time.Millisecond, Logger: NewLogger(false)}

	calls := 0
	err := b.Do("navigate", func() error {
		calls++
		return errors.New("down")
	})
	if err == nil {
		t.Fatal("expected an error after the budget is spent")
	}
	if calls != 2 {
		t.Errorf("calls: got %d, want 2", calls)
	}
}

func TestBackoffZeroAttemptsRunsOnce(t *testing.T) {
	b := &Backoff{Logger: NewLogger(false)}

	calls := 0
	if err := b.Do("ping", func() error { calls++; return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls: got %d, want 1", calls)
	}
}

func TestBackoffDelayCap(t *testing.T) {
	b := &Backoff{BaseDelay: time.Second, MaxDelay: 3 * time.Second}

	if got := b.delayFor(1); got != time.Second {
		t.Errorf("delayFor(1) = %v; want 1s", got)
	}
	if got := b.delayFor(2); got != 2*time.Second {
		t.Errorf("delayFor(2) = %v; want 2s", got)
	}
	if got := b.delayFor(4); got != 3*time.Second {
		t.Errorf("delayFor(4) = %v; want 3s", got)
	}
}
