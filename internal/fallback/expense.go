package fallback

import (
	"github.com/Veraticus/lifeone/internal/entity"
	"github.com/Veraticus/lifeone/internal/model"
	"github.com/Veraticus/lifeone/internal/rules"
	"github.com/Veraticus/lifeone/internal/temporal"
)

func (e *Extractor) expense(text string, anchor temporal.Anchor) (model.Expense, bool) {
	amount, ok := entity.ParseAmount(text)
	if !ok {
		return model.Expense{}, false
	}

	item, ok := e.items.Extract(text)
	if !ok {
		item = e.rules.DefaultItemName
	}

	kind := model.KindExpense
	if rules.ContainsAny(text, e.rules.IncomeKeywords) {
		kind = model.KindIncome
	}

	return model.Expense{
		Date:     e.dateOf(text, anchor),
		Item:     item,
		Amount:   amount,
		Kind:     kind,
		Category: e.rules.ExpenseCategory(text),
	}, true
}
