package helpers

import (
	"math"
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	if d := ParseDuration("3s", time.Minute); d != 3*time.Second {
		t.Errorf("ParseDuration(3s) = %v, expected 3s", d)
	}
	if d := ParseDuration("soon", time.Minute); d != time.Minute {
		t.Errorf("ParseDuration(soon) = %v, expected fallback 1m", d)
	}
}

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("IDT", 3*3600)
	ts := time.Date(2024, 5, 1, 12, 30, 0, 250*int(time.Millisecond), loc)

	expected := "2024-05-01T09:30:00.250Z"
	if got := FormatTimestamp(ts); got != expected {
		t.Errorf("FormatTimestamp() = %s, expected %s", got, expected)
	}
}

func TestFormatAndParseDate(t *testing.T) {
	d := time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)
	if FormatDate(d) != "2024-12-31" {
		t.Errorf("FormatDate() = %s, expected 2024-12-31", FormatDate(d))
	}
	if _, err := ParseDate("31/12/2024"); err == nil {
		t.Error("Expected error for non ISO date")
	}
}

func TestDistanceKm(t *testing.T) {
	if d := DistanceKm(32.0, 34.8, 32.0, 34.8); d != 0 {
		t.Errorf("DistanceKm(same point) = %v, expected 0", d)
	}

	// One degree of latitude is about 111.19 km
	d := DistanceKm(0, 0, 1, 0)
	if math.Abs(d-111.19) > 0.1 {
		t.Errorf("DistanceKm(1 deg lat) = %v, expected ~111.19", d)
	}
}
