package testutil

import (
	"testing"
	"time"

	"github.com/Veraticus/lifeone/internal/temporal"
)

// Fixed Seoul wall-clock times used as anchors across tests.
const (
	// Wednesday is a Wednesday at the end of January in a leap year.
	Wednesday = "2024-01-31 10:00"
	// NewYearsEve sits on a year boundary.
	NewYearsEve = "2024-12-31 23:30"
	// LeapDay is February 29.
	LeapDay = "2024-02-29 12:00"
)

// AnchorAt parses a "YYYY-MM-DD HH:MM" Seoul time into an anchor or fails the test.
func AnchorAt(t *testing.T, value string) temporal.Anchor {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, temporal.Location)
	if err != nil {
		t.Fatalf("invalid anchor %q: %v", value, err)
	}
	return temporal.NewAnchor(ts)
}
