package zainetto

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2025-07-01", NewDate(2025, time.July, 1)},
		{"2025-7-1", NewDate(2025, time.July, 1)},
		{"01/07/2025", NewDate(2025, time.July, 1)},
		{"1-7-2025", NewDate(2025, time.July, 1)},
		{" 2025-07-01 ", NewDate(2025, time.July, 1)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDate("not a date"); err == nil {
		t.Error("ParseDate(not a date) should fail")
	}
}

func TestDateDays(t *testing.T) {
	a := MustParse("2024-01-01")
	b := MustParse("2024-01-31")
	if got, want := a.Days(b), 30; got != want {
		t.Errorf("Days got %d, want %d", got, want)
	}
	if got, want := b.Days(a), -30; got != want {
		t.Errorf("reverse Days got %d, want %d", got, want)
	}
}

func TestEndOfYear(t *testing.T) {
	if got, want := EndOfYear(2024).String(), "2024-12-31"; got != want {
		t.Errorf("EndOfYear got %s, want %s", got, want)
	}
}

func TestDateAdd(t *testing.T) {
	d := MustParse("2024-12-30")
	if got, want := d.Add(2).String(), "2025-01-01"; got != want {
		t.Errorf("Add got %s, want %s", got, want)
	}
}
