// Package fallback extracts records from an utterance with keyword rules when the
// generative model's continuation cannot be parsed.
//
// Extraction runs in two phases. Phase A looks for a cross-reference such as
// "가계부의 국수를 메모에 저장해줘" and copies the referenced record from the caller's
// snapshot into the destination category. When Phase A does not produce a record,
// Phase B runs the contact, expense, schedule and diary extractors independently and
// flags the result for clarification when more than one of them fires.
package fallback

import (
	"strings"

	"github.com/samber/lo"

	"github.com/Veraticus/lifeone/internal/entity"
	"github.com/Veraticus/lifeone/internal/model"
	"github.com/Veraticus/lifeone/internal/rules"
	"github.com/Veraticus/lifeone/internal/temporal"
)

// Extractor is the rule-based structured extractor. It holds only immutable state and
// is safe for concurrent use.
type Extractor struct {
	rules *rules.Rules
	dates *temporal.Resolver
	items *entity.Extractor

	crossRefs []crossRefPattern
	schedule  *scheduleExtractor
	diary     *diaryExtractor
	contacts  *contactExtractor
}

// New builds an extractor on top of the temporal resolver and item extractor.
func New(r *rules.Rules, dates *temporal.Resolver, items *entity.Extractor) *Extractor {
	return &Extractor{
		rules:     r,
		dates:     dates,
		items:     items,
		crossRefs: compileCrossRefs(r),
		schedule:  newScheduleExtractor(r),
		diary:     newDiaryExtractor(r),
		contacts:  newContactExtractor(r),
	}
}

// Extract derives records from text. The snapshot is only read.
func (e *Extractor) Extract(text string, anchor temporal.Anchor, snap model.Snapshot) model.ExtractionResult {
	if res, ok := e.crossReference(text, anchor, snap); ok {
		return res
	}

	res := model.NewExtractionResult()
	if c, ok := e.contacts.extract(text); ok {
		res.Add(c)
	}
	if x, ok := e.expense(text, anchor); ok {
		res.Add(x)
	}
	if s, ok := e.schedule.extract(text, e.dateOf(text, anchor)); ok {
		res.Add(s)
	}
	if d, ok := e.diary.extract(text, e.dateOf(text, anchor)); ok {
		res.Add(d)
	}

	res.Clarification = ambiguity(res)
	return res
}

// dateOf resolves the date mentioned in text, defaulting to the anchor's date.
func (e *Extractor) dateOf(text string, anchor temporal.Anchor) string {
	if d, ok := e.dates.Resolve(text, anchor); ok {
		return d.String()
	}
	return anchor.Date().String()
}

// ambiguity flags a result that populated two or more categories.
func ambiguity(res model.ExtractionResult) model.ClarificationState {
	populated := res.Populated()
	if len(populated) < 2 {
		return model.ClarificationState{}
	}

	labels := lo.Map(populated, func(c model.Category, _ int) string { return c.Label() })
	return model.ClarificationState{
		Needed:              true,
		Question:            "입력하신 내용이 " + strings.Join(labels, ", ") + "로 파싱되었습니다. 어디에 저장할까요?",
		Options:             labels,
		AmbiguousCategories: populated,
	}
}
