package utils

import "time"

// WaitStable calls probe until its value stops changing between two
// consecutive rounds, sleeping interval between rounds. It returns the last
// observed value and whether stability was reached within maxRounds. The
// round bound guarantees termination even when the value never settles.
func WaitStable(maxRounds int, interval time.Duration, probe func() (int64, error)) (int64, bool, error) {
	if maxRounds < 1 {
		maxRounds = 1
	}

	last, err := probe()
	if err != nil {
		return 0, false, err
	}

	for round := 1; round < maxRounds; round++ {
		time.Sleep(interval)
		v, err := probe()
		if err != nil {
			return last, false, err
		}
		if v == last {
			return v, true, nil
		}
		last = v
	}

	return last, false, nil
}

// PollUntil calls cond up to maxAttempts times, sleeping interval between
// attempts, and reports whether the condition was met within the bound.
func PollUntil(maxAttempts int, interval time.Duration, cond func() (bool, error)) (bool, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	for attempt := 1; ; attempt++ {
		ok, err := cond()
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if attempt >= maxAttempts {
			return false, nil
		}
		time.Sleep(interval)
	}
}
