package temporal

import (
	"regexp"
	"strings"
	"time"
)

var bareDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ToLocalDate projects a date field onto the Asia/Seoul calendar.
//
// A bare YYYY-MM-DD is already a Seoul date and is returned unchanged. Timestamps that
// carry a zone (a trailing Z or an offset) are converted, which keeps
// "2024-03-01T16:00:00Z" from landing on March 1 instead of March 2. Naive timestamps
// are taken as Seoul wall-clock time. Anything unparseable is returned as is.
func ToLocalDate(value string) string {
	value = strings.TrimSpace(value)
	if bareDate.MatchString(value) {
		return value
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return DateOf(t.In(Location)).String()
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, Location); err == nil {
			return DateOf(t).String()
		}
	}

	return value
}
