// Package entity finds the item name an utterance is about, such as 국수 in
// "오늘 국수 5000원 먹었어".
package entity

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/Veraticus/lifeone/internal/rules"
)

// Extractor strips amounts, date expressions and action verbs from an utterance and
// returns the first meaningful word that remains.
//
// The strip patterns are compiled here from the rule tables and are independent of the
// temporal resolver, so the extractor can run on text whose date has already been
// consumed elsewhere.
type Extractor struct {
	stopWords map[string]struct{}
	strip     []*regexp.Regexp
}

// New compiles the strip patterns.
func New(r *rules.Rules) *Extractor {
	return &Extractor{
		stopWords: lo.SliceToMap(r.ItemStopWords, func(w string) (string, struct{}) {
			return w, struct{}{}
		}),
		strip: []*regexp.Regexp{
			wonAmount,
			regexp.MustCompile(rules.Alternation(r.RelativeWords(), r.Weekdays)),
			regexp.MustCompile(`\d+일\s*(?:전|후)`),
			regexp.MustCompile(`\d+주\s*(?:전|후)`),
			regexp.MustCompile(`\d+개?월\s*(?:전|후)`),
			regexp.MustCompile(`\d{1,2}월\s*\d{1,2}일`),
			regexp.MustCompile(rules.Alternation(r.ActionVerbs)),
			number,
		},
	}
}

// Extract returns the item name, or false when nothing but stop words remains.
func (e *Extractor) Extract(text string) (string, bool) {
	cleaned := text
	for _, re := range e.strip {
		cleaned = re.ReplaceAllString(cleaned, " ")
	}

	for _, word := range strings.Fields(cleaned) {
		word = strings.Trim(word, ",.!?~")
		if _, stop := e.stopWords[word]; stop {
			continue
		}
		if utf8.RuneCountInString(word) > 1 {
			return word, true
		}
	}
	return "", false
}
