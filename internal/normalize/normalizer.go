// Package normalize post-processes an extraction result from either the generative
// model or the fallback extractor before it is returned to the caller.
package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/lifeone/internal/entity"
	"github.com/Veraticus/lifeone/internal/model"
	"github.com/Veraticus/lifeone/internal/rules"
	"github.com/Veraticus/lifeone/internal/temporal"
)

// Hour answers offered when a schedule time could be morning or afternoon.
const (
	Morning   = "오전"
	Afternoon = "오후"
)

// Normalizer re-anchors dates, repairs placeholder item names and detects
// ambiguous hours.
type Normalizer struct {
	rules *rules.Rules
	items *entity.Extractor
}

// New returns a normalizer that recovers item names with items.
func New(r *rules.Rules, items *entity.Extractor) *Normalizer {
	return &Normalizer{rules: r, items: items}
}

// Normalize returns a normalized copy of res and the clarification the caller must
// answer. Category ambiguity already present on res is kept as is; only when there is
// none is the first schedule with an hour from 1 to 12 reported.
func (n *Normalizer) Normalize(text string, res model.ExtractionResult) (model.ExtractionResult, model.ClarificationState) {
	out := res.Clone()

	for i := range out.Schedule {
		out.Schedule[i].Date = temporal.ToLocalDate(out.Schedule[i].Date)
	}
	for i := range out.Diary {
		out.Diary[i].Date = temporal.ToLocalDate(out.Diary[i].Date)
	}
	for i := range out.Expenses {
		x := &out.Expenses[i]
		x.Date = temporal.ToLocalDate(x.Date)
		if n.rules.IsGenericItemName(x.Item) {
			if item, ok := n.items.Extract(text); ok {
				x.Item = item
			}
		}
	}

	clar := out.Clarification
	if len(clar.AmbiguousCategories) >= 2 {
		clar.Needed = true
		clar.AmbiguousHour = nil
		out.Clarification = clar
		return out, clar
	}

	clar = model.ClarificationState{}
	for _, s := range out.Schedule {
		hour, ok := Hour(s.Time)
		if !ok || hour < 1 || hour > 12 {
			continue
		}
		clar = model.ClarificationState{
			Needed:        true,
			AmbiguousHour: &hour,
			Question:      fmt.Sprintf("%d시가 오전인가요, 오후인가요?", hour),
			Options:       []string{Morning, Afternoon},
		}
		break
	}

	out.Clarification = clar
	return out, clar
}

// Hour reads the hour from an HH:MM time.
func Hour(clock string) (int, bool) {
	h, _, found := strings.Cut(clock, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	return hour, true
}
