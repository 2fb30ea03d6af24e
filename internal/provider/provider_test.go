package provider

import (
	"testing"
	"time"
)

func TestNormalizePublishedAt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"rfc3339 passes through", "2025-06-01T10:30:00Z", "2025-06-01T10:30:00Z"},
		{"offset converted to utc", "2025-06-01T16:00:00+05:30", "2025-06-01T10:30:00Z"},
		{"fractional seconds", "2025-06-01T10:30:00.123456Z", "2025-06-01T10:30:00Z"},
		{"date only", "2025-06-01", "2025-06-01T00:00:00Z"},
		{"space separated", "2025-06-01 10:30:00", "2025-06-01T10:30:00Z"},
		{"empty", "", ""},
		{"garbage", "last tuesday", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePublishedAt(tt.raw); got != tt.want {
				t.Errorf("NormalizePublishedAt(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCooldown(t *testing.T) {
	var c cooldown
	if c.active() {
		t.Error("fresh cooldown should be inactive")
	}
	c.set(time.Minute)
	if !c.active() {
		t.Error("cooldown should be active after set")
	}
	c.set(-time.Second)
	if c.active() {
		t.Error("expired cooldown should be inactive")
	}
}

func TestClampPageSize(t *testing.T) {
	tests := []struct {
		in, max, want int
	}{
		{0, 100, 1},
		{-5, 100, 1},
		{8, 100, 8},
		{250, 100, 100},
	}
	for _, tt := range tests {
		if got := clampPageSize(tt.in, tt.max); got != tt.want {
			t.Errorf("clampPageSize(%d, %d) = %d, want %d", tt.in, tt.max, got, tt.want)
		}
	}
}
