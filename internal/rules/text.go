package rules

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"

	"github.com/Veraticus/lifeone/internal/model"
)

// NormalizeText trims the text and converts it to NFC so that Hangul typed as
// decomposed jamo (as macOS input methods can produce) matches the keyword tables.
func NormalizeText(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}

// ContainsAny reports whether text contains at least one of the keywords.
func ContainsAny(text string, keywords []string) bool {
	return lo.SomeBy(keywords, func(k string) bool {
		return strings.Contains(text, k)
	})
}

// Alternation builds a regexp alternation group from words, longest first so that
// 메모장 wins over 메모 at the same position.
func Alternation(words ...[]string) string {
	all := lo.Uniq(lo.Flatten(words))
	sort.SliceStable(all, func(i, j int) bool {
		return len([]rune(all[i])) > len([]rune(all[j]))
	})
	quoted := lo.Map(all, func(w string, _ int) string {
		return regexp.QuoteMeta(w)
	})
	return "(?:" + strings.Join(quoted, "|") + ")"
}

// CategoryFor maps a category phrase such as 가계부 or 메모장 to its canonical category.
func (r *Rules) CategoryFor(phrase string) (model.Category, bool) {
	phrase = strings.TrimSpace(phrase)
	for _, cp := range r.CategoryPhrases {
		if lo.Contains(cp.Phrases, phrase) {
			return cp.Category, true
		}
	}
	return "", false
}

// AllCategoryPhrases returns every category phrase in table order.
func (r *Rules) AllCategoryPhrases() []string {
	return lo.FlatMap(r.CategoryPhrases, func(cp CategoryPhrase, _ int) []string {
		return cp.Phrases
	})
}

// DayMarkerWords returns all explicit day-marker words.
func (r *Rules) DayMarkerWords() []string {
	return lo.FlatMap(r.DayMarkers, func(m DayMarker, _ int) []string {
		return m.Words
	})
}

// RelativeWords returns the day, week, month and year marker words.
func (r *Rules) RelativeWords() []string {
	return lo.Flatten([][]string{
		r.DayMarkerWords(),
		r.NextWeek, r.ThisWeek, r.LastWeek,
		r.NextMonth, r.ThisMonth, r.LastMonth,
		r.LastYear, r.NextYear, r.ThisYear,
	})
}

// ExpenseCategory returns the first expense category whose keywords appear in text,
// or the "other" category.
func (r *Rules) ExpenseCategory(text string) string {
	for _, rule := range r.ExpenseCategories {
		if ContainsAny(text, rule.Keywords) {
			return rule.Category
		}
	}
	return model.ExpenseCategoryOther
}

// IsGenericItemName reports whether name is a placeholder rather than a real item.
func (r *Rules) IsGenericItemName(name string) bool {
	return lo.Contains(r.GenericItemNames, strings.TrimSpace(name))
}
