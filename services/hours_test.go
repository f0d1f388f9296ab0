package services

import (
	"strings"
	"testing"
	"time"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}

func TestIsOpenAt(t *testing.T) {
	tests := []struct {
		name string
		when string // 2024-07-01 is a Monday
		want bool
	}{
		{"monday is rest day", "2024-07-01 12:00", false},
		{"tuesday lunch", "2024-07-02 12:00", true},
		{"tuesday between services", "2024-07-02 15:00", false},
		{"tuesday evening", "2024-07-02 19:30", true},
		{"tuesday at closing", "2024-07-02 22:00", false},
		{"tuesday before opening", "2024-07-02 10:59", false},
		{"friday late evening", "2024-07-05 22:30", true},
		{"saturday no lunch service", "2024-07-06 12:00", false},
		{"saturday evening", "2024-07-06 18:00", true},
		{"sunday evening", "2024-07-07 21:59", true},
	}
	for _, tt := range tests {
		got := IsOpenAt(at(t, tt.when))
		if got != tt.want {
			t.Errorf("%s: IsOpenAt(%s) = %v, want %v", tt.name, tt.when, got, tt.want)
		}
	}
}

func TestOpeningHoursText(t *testing.T) {
	text := OpeningHoursText()
	if !strings.Contains(text, "Montag: Ruhetag") {
		t.Errorf("schedule should mark Monday as rest day:\n%s", text)
	}
	if !strings.Contains(text, "Dienstag: 11:00–14:00 und 17:00–22:00") {
		t.Errorf("schedule should list both Tuesday services:\n%s", text)
	}
}
