// Package temporal resolves Korean relative and absolute date expressions
// against a fixed Asia/Seoul anchor.
package temporal

import (
	"time"
)

// Location is the single timezone every date is resolved in.
var Location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		// Korea has not observed DST since 1988, a fixed offset is exact.
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

var koreanWeekdays = []string{"월", "화", "수", "목", "금", "토", "일"}

// Anchor is the "now" that relative expressions are resolved against.
type Anchor struct {
	t time.Time
}

// Now returns an anchor for the current instant in Asia/Seoul.
func Now() Anchor {
	return NewAnchor(time.Now())
}

// NewAnchor projects t into Asia/Seoul.
func NewAnchor(t time.Time) Anchor {
	return Anchor{t: t.In(Location)}
}

// Time returns the anchor instant in Asia/Seoul.
func (a Anchor) Time() time.Time {
	return a.t
}

// Date returns the anchor's calendar date.
func (a Anchor) Date() Date {
	return DateOf(a.t)
}

// WeekdayIndex returns the anchor's weekday with Monday=0 and Sunday=6.
func (a Anchor) WeekdayIndex() int {
	return (int(a.t.Weekday()) + 6) % 7
}

// WeekdayName returns the single-syllable Korean weekday, e.g. 수.
func (a Anchor) WeekdayName() string {
	return koreanWeekdays[a.WeekdayIndex()]
}

// DateTime formats the anchor as "2006-01-02 15:04".
func (a Anchor) DateTime() string {
	return a.t.Format("2006-01-02 15:04")
}
