package quota

import (
	"testing"
	"time"
)

func TestTrackerEnforcesDailyLimit(t *testing.T) {
	tracker := NewTracker(3)

	for i := 0; i < 3; i++ {
		if !tracker.CanUse() {
			t.Fatalf("request %d should be allowed", i+1)
		}
		tracker.RecordUse()
	}

	if tracker.CanUse() {
		t.Error("fourth request should be denied")
	}
	if got := tracker.Remaining(); got != 0 {
		t.Errorf("Remaining() = %d, want 0", got)
	}
}

func TestTrackerResetsOnDateRollover(t *testing.T) {
	current := time.Date(2025, 3, 1, 23, 50, 0, 0, time.Local)
	tracker := NewTracker(2)
	tracker.now = func() time.Time { return current }

	tracker.RecordUse()
	tracker.RecordUse()
	if tracker.CanUse() {
		t.Fatal("budget should be exhausted before midnight")
	}

	current = current.Add(20 * time.Minute)
	if !tracker.CanUse() {
		t.Error("budget should reset after the date changes")
	}
	if got := tracker.Used(); got != 0 {
		t.Errorf("Used() after rollover = %d, want 0", got)
	}
}

func TestTrackerRemainingNeverNegative(t *testing.T) {
	tracker := NewTracker(1)
	tracker.RecordUse()
	tracker.RecordUse()

	if got := tracker.Remaining(); got != 0 {
		t.Errorf("Remaining() = %d, want 0", got)
	}
	if got := tracker.Used(); got != 2 {
		t.Errorf("Used() = %d, want 2", got)
	}
}
