package testutil

import (
	"github.com/Veraticus/lifeone/internal/model"
)

// SnapshotBuilder provides a fluent interface for constructing caller context.
//
// Example:
//
//	snap := testutil.NewSnapshot().
//		WithExpense("국수", 5000).
//		WithContact("김철수", "010-1234-5678").
//		Build()
type SnapshotBuilder struct {
	snap model.Snapshot
}

// NewSnapshot starts an empty snapshot.
func NewSnapshot() *SnapshotBuilder {
	return &SnapshotBuilder{snap: model.Snapshot{
		Contacts: []model.Contact{},
		Schedule: []model.ScheduleItem{},
		Expenses: []model.Expense{},
		Diary:    []model.DiaryEntry{},
	}}
}

// WithContact adds a contact in the default group.
func (b *SnapshotBuilder) WithContact(name, phone string) *SnapshotBuilder {
	b.snap.Contacts = append(b.snap.Contacts, model.Contact{Name: name, Phone: phone, Group: model.DefaultGroup})
	return b
}

// WithEmailContact adds a contact reachable only by email.
func (b *SnapshotBuilder) WithEmailContact(name, email string) *SnapshotBuilder {
	b.snap.Contacts = append(b.snap.Contacts, model.Contact{Name: name, Email: email, Group: model.DefaultGroup})
	return b
}

// WithSchedule adds a schedule item.
func (b *SnapshotBuilder) WithSchedule(title, date, clock string) *SnapshotBuilder {
	b.snap.Schedule = append(b.snap.Schedule, model.ScheduleItem{Title: title, Date: date, Time: clock})
	return b
}

// WithExpense adds a food expense dated 2024-01-30.
func (b *SnapshotBuilder) WithExpense(item string, amount int64) *SnapshotBuilder {
	b.snap.Expenses = append(b.snap.Expenses, model.Expense{
		Date:     "2024-01-30",
		Item:     item,
		Amount:   amount,
		Kind:     model.KindExpense,
		Category: model.ExpenseCategoryFood,
	})
	return b
}

// WithDiary adds a diary entry dated 2024-01-30.
func (b *SnapshotBuilder) WithDiary(entry string) *SnapshotBuilder {
	b.snap.Diary = append(b.snap.Diary, model.DiaryEntry{Date: "2024-01-30", Entry: entry, Group: model.DefaultGroup})
	return b
}

// Build returns the snapshot.
func (b *SnapshotBuilder) Build() model.Snapshot {
	return b.snap
}
