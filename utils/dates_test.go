package utils

import (
	"testing"
	"time"
)

func TestWindowStart(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	if got := WindowStart(WindowWeek, now); !got.Equal(now.AddDate(0, 0, -7)) {
		t.Errorf("week start = %v, want %v", got, now.AddDate(0, 0, -7))
	}
	if got := WindowStart(WindowMonth, now); !got.Equal(now.AddDate(0, -1, 0)) {
		t.Errorf("month start = %v, want %v", got, now.AddDate(0, -1, 0))
	}
	if got := WindowStart(WindowYear, now); !got.Equal(now.AddDate(-1, 0, 0)) {
		t.Errorf("year start = %v, want %v", got, now.AddDate(-1, 0, 0))
	}
	if got := WindowStart(WindowAll, now); !got.IsZero() {
		t.Errorf("all start = %v, want zero time", got)
	}
	if got := WindowStart("bogus", now); !got.IsZero() {
		t.Errorf("unknown window start = %v, want zero time", got)
	}
}

func TestBeginningOfDay(t *testing.T) {
	in := time.Date(2024, 6, 15, 23, 59, 59, 123, time.UTC)
	got := BeginningOfDay(in)
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("BeginningOfDay = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 17, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 2 {
		t.Errorf("DaysBetween = %d, want 2", got)
	}
}
