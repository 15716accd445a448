// Package routing decides whether an utterance can be handled by the local pipeline
// or must be delegated to the remote service.
package routing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Veraticus/lifeone/internal/entity"
	"github.com/Veraticus/lifeone/internal/model"
	"github.com/Veraticus/lifeone/internal/rules"
)

var datePattern = regexp.MustCompile(`\d{1,2}월|\d{1,2}일|오늘|내일|어제`)

// rule is one row of the decision table.
type rule struct {
	match     func(text string) bool
	reason    model.Reason
	canHandle bool
}

// Policy is an ordered decision table. The first matching row decides.
type Policy struct {
	table []rule
}

// New builds the decision table from the rule tables.
func New(r *rules.Rules) *Policy {
	has := func(keywords []string) func(string) bool {
		return func(text string) bool { return rules.ContainsAny(text, keywords) }
	}

	return &Policy{table: []rule{
		{reason: model.ReasonMediaAttachment, match: has(r.MediaKeywords)},
		{reason: model.ReasonModification, match: has(r.ModificationKeywords)},
		{reason: model.ReasonDeletion, match: has(r.DeletionKeywords)},
		{reason: model.ReasonExternalKnowledge, match: func(text string) bool {
			return rules.ContainsAny(strings.ToLower(text), r.WorldKnowledgeKeywords) &&
				!rules.ContainsAny(text, r.PersonalDataKeywords)
		}},
		{reason: model.ReasonComplexQuery, match: func(text string) bool {
			return strings.Contains(text, "?") && utf8.RuneCountInString(text) > r.ComplexQueryLength
		}},
		{reason: model.ReasonLocalKeyword, canHandle: true, match: has(r.LocalKeywords)},
		{reason: model.ReasonCurrencyAmount, canHandle: true, match: entity.HasAmount},
		{reason: model.ReasonDatePattern, canHandle: true, match: datePattern.MatchString},
	}}
}

// Route returns the first matching decision, or a delegation when no row matches.
func (p *Policy) Route(text string) model.RoutingDecision {
	for _, row := range p.table {
		if row.match(text) {
			return model.RoutingDecision{CanHandle: row.canHandle, Reason: row.reason}
		}
	}
	return model.RoutingDecision{CanHandle: false, Reason: model.ReasonNoLocalIntent}
}

// Rules lists the decision reasons in evaluation order, ending with the default.
func (p *Policy) Rules() []model.Reason {
	reasons := make([]model.Reason, 0, len(p.table)+1)
	for _, row := range p.table {
		reasons = append(reasons, row.reason)
	}
	return append(reasons, model.ReasonNoLocalIntent)
}
