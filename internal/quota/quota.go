// Package quota tracks per-day request budgets for upstream news APIs that
// enforce a hard daily cap on free-tier keys.
package quota

import (
	"sync"
	"time"
)

// Tracker counts requests against a daily limit. The counter resets when
// the local calendar date changes, matching how the upstream resets its
// free-tier quota.
type Tracker struct {
	mu        sync.Mutex
	limit     int
	usedToday int
	day       string

	now func() time.Time
}

func NewTracker(limit int) *Tracker {
	return &Tracker{limit: limit, now: time.Now}
}

func (t *Tracker) rollover() {
	today := t.now().Format("2006-01-02")
	if today != t.day {
		t.day = today
		t.usedToday = 0
	}
}

// CanUse reports whether another request fits in today's budget. It does not
// consume the budget; call RecordUse after the request is actually made.
func (t *Tracker) CanUse() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollover()
	return t.usedToday < t.limit
}

// RecordUse counts a request unconditionally, even past the limit, so that
// Remaining can report a true deficit when callers race the boundary.
func (t *Tracker) RecordUse() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollover()
	t.usedToday++
}

func (t *Tracker) Used() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollover()
	return t.usedToday
}

func (t *Tracker) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollover()
	remaining := t.limit - t.usedToday
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

func (t *Tracker) Limit() int { return t.limit }
