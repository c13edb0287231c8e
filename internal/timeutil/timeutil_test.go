package timeutil

import (
	"testing"
	"time"
)

func TestParseHM(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:00:00", 0, true},
		{"9am", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseHM(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseHM(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHM(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHM(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatHM(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{480, "08:00"},
		{570, "09:30"},
		{1439, "23:59"},
		{1440, "00:00"}, // wraps into the next day
		{1500, "01:00"},
	}

	for _, tc := range tests {
		if got := FormatHM(tc.in); got != tc.want {
			t.Errorf("FormatHM(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatRange(t *testing.T) {
	if got := FormatRange(540, 600); got != "09:00-10:00" {
		t.Fatalf("FormatRange(540, 600) = %q", got)
	}
}

func TestWeekday(t *testing.T) {
	// 2026-08-31 is a Monday.
	tests := []struct {
		date string
		want int
	}{
		{"2026-08-31", 0},
		{"2026-09-01", 1},
		{"2026-09-04", 4},
		{"2026-09-05", 5},
		{"2026-09-06", 6},
	}

	for _, tc := range tests {
		d, err := ParseDate(tc.date)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tc.date, err)
		}
		if got := Weekday(d); got != tc.want {
			t.Errorf("Weekday(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestDayName(t *testing.T) {
	if DayName(0) != "Monday" || DayName(5) != "Saturday" || DayName(6) != "Sunday" {
		t.Fatal("Monday=0 naming broken")
	}
	if DayName(-1) != "unknown" || DayName(7) != "unknown" {
		t.Fatal("out-of-range weekday must be unknown")
	}
}

func TestCombine(t *testing.T) {
	d, _ := ParseDate("2026-08-31")

	got, err := Combine(d, "14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 8, 31, 14, 30, 0, 0, d.Location())
	if !got.Equal(want) {
		t.Fatalf("Combine = %v, want %v", got, want)
	}

	if _, err := Combine(d, "bad"); err == nil {
		t.Fatal("expected error for malformed time")
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 8, 31, 17, 45, 12, 999, time.UTC)
	got := DateOnly(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Fatalf("DateOnly did not truncate: %v", got)
	}
	if got.Year() != 2026 || got.Month() != 8 || got.Day() != 31 {
		t.Fatalf("DateOnly moved the date: %v", got)
	}
}
