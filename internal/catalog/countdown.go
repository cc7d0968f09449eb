package catalog

import (
	"context"
	"time"
)

// Remaining is a countdown snapshot. Done is true once the deadline has
// passed; all fields are zero from then on.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Done    bool
}

// Until computes the time left to deadline at the given instant,
// clamped at zero.
func Until(deadline, now time.Time) Remaining {
	left := deadline.Sub(now)
	if left <= 0 {
		return Remaining{Done: true}
	}
	return Remaining{
		Days:    int(left.Hours()) / 24,
		Hours:   int(left.Hours()) % 24,
		Minutes: int(left.Minutes()) % 60,
		Seconds: int(left.Seconds()) % 60,
	}
}

// Countdown recomputes the remaining time on a fixed interval and stops
// at zero. Purely cosmetic: nothing is synchronized with the backend.
type Countdown struct {
	Deadline time.Time
	Interval time.Duration
}

// Run invokes fn with each snapshot until the deadline passes or ctx is
// cancelled. The final Done snapshot is delivered before returning.
func (c Countdown) Run(ctx context.Context, fn func(Remaining)) {
	interval := c.Interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		snap := Until(c.Deadline, time.Now())
		fn(snap)
		if snap.Done {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
