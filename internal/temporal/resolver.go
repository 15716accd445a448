package temporal

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Veraticus/lifeone/internal/rules"
)

// weekQualifier says which week a weekday expression refers to.
type weekQualifier int

const (
	weekUnqualified weekQualifier = iota
	weekNext
	weekLast
	weekThis
)

// rule is one step of the resolution cascade. matched reports whether the rule
// claimed the text; once a rule matches, resolution stops even when valid is false.
type rule struct {
	resolve func(text string, a Anchor) (d Date, valid, matched bool)
	name    string
}

// Resolver turns date expressions into calendar dates.
type Resolver struct {
	rules *rules.Rules

	dayOffset   *regexp.Regexp
	weekOffset  *regexp.Regexp
	monthOffset *regexp.Regexp
	dayOfMonth  *regexp.Regexp
	monthDay    *regexp.Regexp
	shortDay    *regexp.Regexp

	cascade []rule
}

// NewResolver compiles the resolution cascade for the given rule tables.
func NewResolver(r *rules.Rules) *Resolver {
	weekMarkers := rules.Alternation(r.NextWeek, r.LastWeek, r.ThisWeek)

	res := &Resolver{
		rules:       r,
		dayOffset:   regexp.MustCompile(`(\d+)일\s*(전|후)`),
		weekOffset:  regexp.MustCompile(`(\d+)주\s*(전|후)`),
		monthOffset: regexp.MustCompile(`(\d+)개?월\s*(전|후)`),
		dayOfMonth:  regexp.MustCompile(`(\d{1,2})일`),
		monthDay:    regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일`),
		shortDay:    regexp.MustCompile(`(` + weekMarkers + `)\s*(` + rules.Alternation(r.ShortWeekdays) + `)`),
	}

	res.cascade = []rule{
		{name: "day_marker", resolve: res.dayMarker},
		{name: "day_week_offset", resolve: res.dayWeekOffset},
		{name: "week_relative", resolve: res.weekRelative},
		{name: "weekday", resolve: res.weekday},
		{name: "month_offset", resolve: res.monthOffsetRule},
		{name: "month_relative_day", resolve: res.monthRelativeDay},
		{name: "month_relative", resolve: res.monthRelative},
		{name: "month_day", resolve: res.monthDayRule},
		{name: "year_relative", resolve: res.yearRelative},
	}

	return res
}

// Resolve returns the date text refers to, relative to the anchor. The second return
// value is false when no expression was recognized or the recognized one names a day
// that does not exist.
func (r *Resolver) Resolve(text string, a Anchor) (Date, bool) {
	for _, step := range r.cascade {
		d, valid, matched := step.resolve(text, a)
		if !matched {
			continue
		}
		if !valid {
			slog.Debug("date expression names an invalid day", "rule", step.name, "text", text)
			return Date{}, false
		}
		return d, true
	}
	return Date{}, false
}

// RuleNames lists the cascade steps in evaluation order.
func (r *Resolver) RuleNames() []string {
	names := make([]string, len(r.cascade))
	for i, step := range r.cascade {
		names[i] = step.name
	}
	return names
}

func (r *Resolver) dayMarker(text string, a Anchor) (Date, bool, bool) {
	for _, m := range r.rules.DayMarkers {
		if rules.ContainsAny(text, m.Words) {
			return a.Date().AddDays(m.Offset), true, true
		}
	}
	return Date{}, false, false
}

func (r *Resolver) dayWeekOffset(text string, a Anchor) (Date, bool, bool) {
	if m := r.dayOffset.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Date{}, false, true
		}
		return a.Date().AddDays(direction(m[2]) * n), true, true
	}
	if m := r.weekOffset.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Date{}, false, true
		}
		return a.Date().AddDays(direction(m[2]) * n * 7), true, true
	}
	return Date{}, false, false
}

func (r *Resolver) weekRelative(text string, a Anchor) (Date, bool, bool) {
	if r.namesWeekday(text) {
		return Date{}, false, false
	}
	switch {
	case rules.ContainsAny(text, r.rules.LastWeek):
		return a.Date().AddDays(-7), true, true
	case rules.ContainsAny(text, r.rules.NextWeek):
		return a.Date().AddDays(7), true, true
	case rules.ContainsAny(text, r.rules.ThisWeek):
		return a.Date(), true, true
	}
	return Date{}, false, false
}

func (r *Resolver) weekday(text string, a Anchor) (Date, bool, bool) {
	for target, name := range r.rules.Weekdays {
		if !strings.Contains(text, name) {
			continue
		}
		return shiftToWeekday(a, target, r.qualifier(text)), true, true
	}

	if target, q, ok := r.shortWeekday(text); ok {
		return shiftToWeekday(a, target, q), true, true
	}
	return Date{}, false, false
}

func (r *Resolver) monthOffsetRule(text string, a Anchor) (Date, bool, bool) {
	m := r.monthOffset.FindStringSubmatch(text)
	if m == nil {
		return Date{}, false, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Date{}, false, true
	}
	return a.Date().AddMonths(direction(m[2]) * n), true, true
}

func (r *Resolver) monthRelativeDay(text string, a Anchor) (Date, bool, bool) {
	m := r.dayOfMonth.FindStringSubmatch(text)
	if m == nil {
		return Date{}, false, false
	}
	shift, ok := r.monthShift(text)
	if !ok {
		return Date{}, false, false
	}
	day, _ := strconv.Atoi(m[1])
	first := Date{Year: a.Date().Year, Month: a.Date().Month, Day: 1}.AddMonths(shift)
	d, valid := NewDate(first.Year, first.Month, day)
	return d, valid, true
}

func (r *Resolver) monthRelative(text string, a Anchor) (Date, bool, bool) {
	if r.dayOfMonth.MatchString(text) {
		return Date{}, false, false
	}
	shift, ok := r.monthShift(text)
	if !ok {
		return Date{}, false, false
	}
	return a.Date().AddMonths(shift), true, true
}

func (r *Resolver) monthDayRule(text string, a Anchor) (Date, bool, bool) {
	m := r.monthDay.FindStringSubmatch(text)
	if m == nil {
		return Date{}, false, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	today := a.Date()

	switch {
	case rules.ContainsAny(text, r.rules.LastYear):
		d, valid := NewDate(today.Year-1, time.Month(month), day)
		return d, valid, true
	case rules.ContainsAny(text, r.rules.NextYear):
		d, valid := NewDate(today.Year+1, time.Month(month), day)
		return d, valid, true
	case rules.ContainsAny(text, r.rules.ThisYear):
		d, valid := NewDate(today.Year, time.Month(month), day)
		return d, valid, true
	}

	d, valid := NewDate(today.Year, time.Month(month), day)
	if !valid {
		return Date{}, false, true
	}
	if d.Before(today) {
		d, valid = NewDate(today.Year+1, time.Month(month), day)
	}
	return d, valid, true
}

func (r *Resolver) yearRelative(text string, a Anchor) (Date, bool, bool) {
	switch {
	case rules.ContainsAny(text, r.rules.LastYear):
		return a.Date().AddYears(-1), true, true
	case rules.ContainsAny(text, r.rules.NextYear):
		return a.Date().AddYears(1), true, true
	}
	return Date{}, false, false
}

// monthShift returns -1, 0 or +1 for last, this and next month markers.
func (r *Resolver) monthShift(text string) (int, bool) {
	switch {
	case rules.ContainsAny(text, r.rules.NextMonth):
		return 1, true
	case rules.ContainsAny(text, r.rules.LastMonth):
		return -1, true
	case rules.ContainsAny(text, r.rules.ThisMonth):
		return 0, true
	}
	return 0, false
}

func (r *Resolver) qualifier(text string) weekQualifier {
	switch {
	case rules.ContainsAny(text, r.rules.NextWeek):
		return weekNext
	case rules.ContainsAny(text, r.rules.LastWeek):
		return weekLast
	case rules.ContainsAny(text, r.rules.ThisWeek):
		return weekThis
	}
	return weekUnqualified
}

func (r *Resolver) namesWeekday(text string) bool {
	if rules.ContainsAny(text, r.rules.Weekdays) {
		return true
	}
	_, _, ok := r.shortWeekday(text)
	return ok
}

// shortWeekday finds "다음주 금" style expressions. The weekday syllable must not be
// followed by another Hangul syllable, so 다음주 월급 or 다음주 일정 do not count.
func (r *Resolver) shortWeekday(text string) (int, weekQualifier, bool) {
	for _, loc := range r.shortDay.FindAllStringSubmatchIndex(text, -1) {
		if next, _ := utf8.DecodeRuneInString(text[loc[1]:]); isHangulSyllable(next) {
			continue
		}
		marker := text[loc[2]:loc[3]]
		day := text[loc[4]:loc[5]]
		for target, short := range r.rules.ShortWeekdays {
			if short == day {
				return target, r.qualifier(marker), true
			}
		}
	}
	return 0, weekUnqualified, false
}

func shiftToWeekday(a Anchor, target int, q weekQualifier) Date {
	current := a.WeekdayIndex()
	switch q {
	case weekNext:
		return a.Date().AddDays(daysUntil(current, target) + 7)
	case weekLast:
		behind := floorMod(current-target, 7)
		if behind == 0 {
			behind = 7
		}
		return a.Date().AddDays(-(behind + 7))
	default:
		return a.Date().AddDays(daysUntil(current, target))
	}
}

// daysUntil counts days to the next occurrence of target, a full week when it is today.
func daysUntil(current, target int) int {
	ahead := floorMod(target-current, 7)
	if ahead == 0 {
		ahead = 7
	}
	return ahead
}

func direction(word string) int {
	if word == "전" {
		return -1
	}
	return 1
}

func isHangulSyllable(r rune) bool {
	return r >= '가' && r <= '힣'
}
