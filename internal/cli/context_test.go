package cli

import (
	"testing"
)

func TestParseFrequency_Daily(t *testing.T) {
	freq, err := ParseFrequency("daily")
	if err != nil {
		t.Fatalf("ParseFrequency failed: %v", err)
	}
	if freq.Days() != 7 {
		t.Errorf("expected all 7 weekdays set, got %d", freq.Days())
	}
}

func TestParseFrequency_WeekdayList(t *testing.T) {
	freq, err := ParseFrequency("mon, Wednesday,fri")
	if err != nil {
		t.Fatalf("ParseFrequency failed: %v", err)
	}

	for _, key := range []string{"mon", "wed", "fri"} {
		if !freq[key] {
			t.Errorf("expected %s set", key)
		}
	}
	if freq.Days() != 3 {
		t.Errorf("expected exactly 3 weekdays set, got %d", freq.Days())
	}
}

func TestParseFrequency_Invalid(t *testing.T) {
	if _, err := ParseFrequency("mon,someday"); err == nil {
		t.Error("expected invalid weekday to be rejected")
	}
}

func TestFormatFrequency(t *testing.T) {
	daily, _ := ParseFrequency("daily")
	if got := FormatFrequency(daily); got != "daily" {
		t.Errorf("expected 'daily', got %q", got)
	}

	mwf, _ := ParseFrequency("mon,wed,fri")
	if got := FormatFrequency(mwf); got != "mon,wed,fri" {
		t.Errorf("expected 'mon,wed,fri', got %q", got)
	}
}
