package temporal

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate returns the date if it exists on the calendar.
func NewDate(year int, month time.Month, day int) (Date, bool) {
	if month < time.January || month > time.December {
		return Date{}, false
	}
	if day < 1 || day > daysIn(year, month) {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays returns the date n days later (earlier when n is negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.utc().AddDate(0, 0, n))
}

// AddMonths moves n months, clamping the day to the target month's last day.
func (d Date) AddMonths(n int) Date {
	total := int(d.Month) - 1 + n
	year := d.Year + floorDiv(total, 12)
	month := time.Month(floorMod(total, 12) + 1)
	return Date{Year: year, Month: month, Day: min(d.Day, daysIn(year, month))}
}

// AddYears moves n years, clamping February 29 to February 28 when needed.
func (d Date) AddYears(n int) Date {
	year := d.Year + n
	return Date{Year: year, Month: d.Month, Day: min(d.Day, daysIn(year, d.Month))}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.utc().Before(o.utc())
}

func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
