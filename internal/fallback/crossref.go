package fallback

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/Veraticus/lifeone/internal/entity"
	"github.com/Veraticus/lifeone/internal/model"
	"github.com/Veraticus/lifeone/internal/rules"
	"github.com/Veraticus/lifeone/internal/temporal"
)

// crossRefPattern is one surface form of "copy X from source to destination".
// Group indexes are 1-based; source is 0 when the form omits the source category.
type crossRefPattern struct {
	re      *regexp.Regexp
	name    string
	source  int
	content int
	dest    int
}

func compileCrossRefs(r *rules.Rules) []crossRefPattern {
	cat := `\[?(` + rules.Alternation(r.AllCategoryPhrases()) + `)\]?`
	save := rules.Alternation(r.SaveVerbs)

	return []crossRefPattern{
		{
			name:   "source_of_content",
			re:     regexp.MustCompile(cat + `의\s*\[?(.+?)\]?(?:를|을)\s*` + cat + `에?\s*` + save),
			source: 1, content: 2, dest: 3,
		},
		{
			name:   "source_then_content",
			re:     regexp.MustCompile(cat + `\s+(.+?)(?:를|을)\s*` + cat + `에?\s*` + save),
			source: 1, content: 2, dest: 3,
		},
		{
			name:    "content_only",
			re:      regexp.MustCompile(`(.+?)(?:를|을)\s*` + cat + `에?\s*` + save),
			content: 1, dest: 2,
		},
		{
			name:   "source_locative",
			re:     regexp.MustCompile(cat + `에\s+(.+?)\s+` + cat + `에\s*` + save),
			source: 1, content: 2, dest: 3,
		},
	}
}

// crossReference runs Phase A. It reports false when no pattern matched or when the
// first matching pattern names a record the snapshot does not contain.
func (e *Extractor) crossReference(text string, anchor temporal.Anchor, snap model.Snapshot) (model.ExtractionResult, bool) {
	for _, p := range e.crossRefs {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		content := strings.TrimSpace(m[p.content])
		dest, _ := e.rules.CategoryFor(m[p.dest])

		search := e.rules.CrossRefOrder
		if p.source > 0 {
			src, ok := e.rules.CategoryFor(m[p.source])
			if !ok {
				return model.ExtractionResult{}, false
			}
			search = []model.Category{src}
		}

		found, ok := findReferent(search, content, snap)
		if !ok {
			slog.Warn("cross-reference matched but no record found",
				"pattern", p.name, "content", content, "destination", dest)
			return model.ExtractionResult{}, false
		}

		slog.Debug("cross-reference resolved",
			"pattern", p.name, "source", found.Destination(), "destination", dest, "record", found.Summary())

		res := model.NewExtractionResult()
		res.Add(e.synthesize(found, dest, anchor))
		return res, true
	}
	return model.ExtractionResult{}, false
}

// findReferent searches the categories in order and returns the first matching record.
func findReferent(search []model.Category, content string, snap model.Snapshot) (model.Record, bool) {
	for _, c := range search {
		switch c {
		case model.CategoryExpenses:
			if x, ok := matchExpense(content, snap.Expenses); ok {
				return x, true
			}
		case model.CategoryContacts:
			for _, ct := range snap.Contacts {
				if (ct.Name != "" && strings.Contains(content, ct.Name)) ||
					(ct.Phone != "" && strings.Contains(content, ct.Phone)) ||
					(ct.Email != "" && strings.Contains(content, ct.Email)) {
					return ct, true
				}
			}
		case model.CategorySchedule:
			for _, s := range snap.Schedule {
				if mutualSubstring(content, s.Title) {
					return s, true
				}
			}
		case model.CategoryDiary:
			for _, d := range snap.Diary {
				if mutualSubstring(content, d.Entry) {
					return d, true
				}
			}
		}
	}
	return nil, false
}

// matchExpense matches on the item name when the content names one, requiring the
// amounts to agree when the content also carries an amount. Content with only an
// amount matches on the amount.
func matchExpense(content string, expenses []model.Expense) (model.Expense, bool) {
	amount, hasAmount := entity.ParseAmount(content)
	name := strings.ToLower(entity.StripAmounts(content))

	for _, x := range expenses {
		item := strings.ToLower(x.Item)
		nameMatch := name != "" && item != "" &&
			(strings.Contains(item, name) || strings.Contains(name, item))
		amountMatch := hasAmount && amount == x.Amount

		if (nameMatch && (amountMatch || !hasAmount)) || (amountMatch && name == "") {
			return x, true
		}
	}
	return model.Expense{}, false
}

func mutualSubstring(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// synthesize builds the destination record from the referenced one, dated at the anchor.
func (e *Extractor) synthesize(found model.Record, dest model.Category, anchor temporal.Anchor) model.Record {
	today := anchor.Date().String()
	summary := found.Summary()

	switch dest {
	case model.CategorySchedule:
		return model.ScheduleItem{Title: summary, Date: today}

	case model.CategoryExpenses:
		if x, ok := found.(model.Expense); ok {
			x.Date = today
			return x
		}
		amount, _ := entity.ParseAmount(summary)
		item := entity.StripAmounts(summary)
		if item == "" {
			item = e.rules.DefaultItemName
		}
		return model.Expense{
			Date:     today,
			Item:     item,
			Amount:   amount,
			Kind:     model.KindExpense,
			Category: model.ExpenseCategoryOther,
		}

	case model.CategoryContacts:
		if c, ok := found.(model.Contact); ok {
			return c
		}
		contact := model.Contact{Name: summary, Group: model.DefaultGroup}
		if loc := phonePattern.FindStringIndex(summary); loc != nil {
			contact.Phone = normalizePhone(summary[loc[0]:loc[1]])
			contact.Name = strings.Join(strings.Fields(summary[:loc[0]]+" "+summary[loc[1]:]), " ")
		}
		if contact.Name == "" {
			contact.Name = e.rules.UnnamedContact
		}
		return contact

	default:
		return model.DiaryEntry{Date: today, Entry: summary, Group: model.DefaultGroup}
	}
}
