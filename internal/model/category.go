// Package model defines the core data structures for the lifeone application.
package model

// Category identifies one of the four canonical destinations a record can be stored in.
// The string value doubles as the JSON key of the response's dataExtraction object.
type Category string

const (
	// CategoryContacts holds address-book entries.
	CategoryContacts Category = "contacts"
	// CategorySchedule holds calendar items.
	CategorySchedule Category = "schedule"
	// CategoryExpenses holds ledger entries, both spending and income.
	CategoryExpenses Category = "expenses"
	// CategoryDiary holds memos and diary entries.
	CategoryDiary Category = "diary"
)

// CheckOrder is the fixed order in which categories are inspected and reported.
var CheckOrder = []Category{CategoryContacts, CategorySchedule, CategoryExpenses, CategoryDiary}

var categoryLabels = map[Category]string{
	CategoryContacts: "연락처",
	CategorySchedule: "일정",
	CategoryExpenses: "가계부",
	CategoryDiary:    "메모",
}

// Label returns the Korean display label shown to users for the category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// Valid reports whether c is one of the four canonical categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// CategoryFromLabel maps a display label back to its category.
func CategoryFromLabel(label string) (Category, bool) {
	for _, c := range CheckOrder {
		if categoryLabels[c] == label {
			return c, true
		}
	}
	return "", false
}

// ExpenseKind indicates whether a ledger entry is money going out or coming in.
type ExpenseKind string

const (
	// KindExpense represents spending.
	KindExpense ExpenseKind = "expense"
	// KindIncome represents money received.
	KindIncome ExpenseKind = "income"
)

// Expense categories assigned by the keyword table.
const (
	ExpenseCategoryFood      = "식비"
	ExpenseCategoryTransport = "교통"
	ExpenseCategoryShopping  = "쇼핑"
	ExpenseCategorySalary    = "급여"
	ExpenseCategoryOther     = "기타"
)

// DefaultGroup is the group assigned to contacts and diary entries created without one.
const DefaultGroup = "기타"
