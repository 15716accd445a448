package fallback

import (
	"regexp"
	"strings"

	"github.com/Veraticus/lifeone/internal/model"
	"github.com/Veraticus/lifeone/internal/rules"
)

type diaryExtractor struct {
	rules *rules.Rules
	save  *regexp.Regexp
	strip []*regexp.Regexp
	// particles strips an object or subject particle at the end of a word.
	particles *regexp.Regexp
}

func newDiaryExtractor(r *rules.Rules) *diaryExtractor {
	memo := rules.Alternation(r.MemoKeywords)
	return &diaryExtractor{
		rules: r,
		save:  regexp.MustCompile(`(.+?)[을를]\s*` + memo + `에?\s*(?:저장|추가|등록|남겨|적어|써)`),
		strip: []*regexp.Regexp{
			regexp.MustCompile(`(?:에|로)?\s*` + rules.Alternation(r.MemoVerbs)),
			regexp.MustCompile(memo + `(?:에|로)\s*`),
			regexp.MustCompile(rules.Alternation(r.DayMarkerWords(),
				r.NextWeek, r.ThisWeek, r.LastWeek,
				r.NextMonth, r.ThisMonth, r.LastMonth)),
			regexp.MustCompile(`\d{1,2}월\s*\d{1,2}일`),
			regexp.MustCompile(`\d+일\s*(?:전|후)`),
			regexp.MustCompile(`\d+주\s*(?:전|후)`),
		},
		particles: regexp.MustCompile(`(?:을|를|이|가)(\s+|$)`),
	}
}

// extract builds a diary entry when text mentions a memo. An explicit
// "X를 메모에 저장" keeps only X. Otherwise the storage phrase, date tokens and
// particles are removed and a "label: content" form keeps only the content.
func (d *diaryExtractor) extract(text, date string) (model.DiaryEntry, bool) {
	if !rules.ContainsAny(text, d.rules.MemoKeywords) {
		return model.DiaryEntry{}, false
	}

	var entry string
	if m := d.save.FindStringSubmatch(text); m != nil {
		entry = m[1]
	} else {
		entry = text
		for _, re := range d.strip {
			entry = re.ReplaceAllString(entry, " ")
		}
		entry = d.particles.ReplaceAllString(entry, " ")
		if _, content, found := strings.Cut(entry, ":"); found {
			entry = content
		}
	}

	entry = strings.Join(strings.Fields(entry), " ")
	if entry == "" {
		return model.DiaryEntry{}, false
	}
	return model.DiaryEntry{Date: date, Entry: entry, Group: model.DefaultGroup}, true
}
