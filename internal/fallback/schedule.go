package fallback

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Veraticus/lifeone/internal/model"
	"github.com/Veraticus/lifeone/internal/rules"
)

var hourPattern = regexp.MustCompile(`(\d{1,2})시`)

type scheduleExtractor struct {
	rules *rules.Rules
	// shortDay matches a week marker followed by a one-syllable weekday, as in 다음주 금.
	shortDay *regexp.Regexp
	strip    []*regexp.Regexp
	// particles strips a particle at the end of a word.
	particles *regexp.Regexp
}

func newScheduleExtractor(r *rules.Rules) *scheduleExtractor {
	return &scheduleExtractor{
		rules:    r,
		shortDay: regexp.MustCompile(rules.Alternation(r.NextWeek, r.LastWeek, r.ThisWeek) + `\s*` + rules.Alternation(r.ShortWeekdays)),
		strip: []*regexp.Regexp{
			regexp.MustCompile(rules.Alternation(r.RelativeWords())),
			regexp.MustCompile(`\d{1,2}월\s*\d{1,2}일`),
			hourPattern,
			regexp.MustCompile(`\d+일\s*(?:전|후)`),
			regexp.MustCompile(`\d+주\s*(?:전|후)`),
			regexp.MustCompile(`\d+개?월\s*(?:전|후)`),
			regexp.MustCompile(rules.Alternation(r.Weekdays)),
			regexp.MustCompile(rules.Alternation(r.ScheduleVerbs)),
		},
		particles: regexp.MustCompile(rules.Alternation(r.Particles) + `(\s+|$)`),
	}
}

// extract builds a schedule item when text carries a scheduling keyword.
func (s *scheduleExtractor) extract(text, date string) (model.ScheduleItem, bool) {
	if !rules.ContainsAny(text, s.rules.ScheduleKeywords) {
		return model.ScheduleItem{}, false
	}
	return model.ScheduleItem{
		Title: s.title(text),
		Date:  date,
		Time:  clockTime(text),
	}, true
}

// clockTime reads "N시" as HH:00. Hours 1 to 12 are kept as written and resolved to
// morning or afternoon later by clarification.
func clockTime(text string) string {
	m := hourPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return ""
	}
	switch {
	case hour == 0 || hour == 24:
		return "00:00"
	case hour >= 1 && hour <= 23:
		return fmt.Sprintf("%02d:00", hour)
	}
	return ""
}

// title removes date and time tokens, then verbs, then word-final particles. When
// less than two characters remain it falls back to a scheduling noun from the text
// and finally to the head of the utterance.
func (s *scheduleExtractor) title(text string) string {
	title := s.stripShortWeekdays(text)
	for _, re := range s.strip {
		title = re.ReplaceAllString(title, " ")
	}
	title = s.particles.ReplaceAllString(title, " ")
	title = strings.Join(strings.Fields(title), " ")

	if len([]rune(title)) < 2 {
		for _, noun := range s.rules.ScheduleNouns {
			if strings.Contains(text, noun) {
				return noun
			}
		}
	}
	if title == "" {
		return truncateRunes(strings.TrimSpace(text), s.rules.TitleFallbackRune)
	}
	return title
}

// stripShortWeekdays blanks out "다음주 금" style expressions. A weekday syllable
// followed by another Hangul syllable is part of a word (다음주 일정) and is kept.
func (s *scheduleExtractor) stripShortWeekdays(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range s.shortDay.FindAllStringIndex(text, -1) {
		if next, _ := utf8.DecodeRuneInString(text[loc[1]:]); next >= '가' && next <= '힣' {
			continue
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(" ")
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
