package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Destination(t *testing.T) {
	tests := []struct {
		record Record
		name   string
		want   Category
	}{
		{name: "contact", record: Contact{Name: "김철수"}, want: CategoryContacts},
		{name: "schedule", record: ScheduleItem{Title: "회의"}, want: CategorySchedule},
		{name: "expense with its own category", record: Expense{Item: "국수", Category: "식비"}, want: CategoryExpenses},
		{name: "diary", record: DiaryEntry{Entry: "산책"}, want: CategoryDiary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.Destination())
			assert.True(t, tt.record.Destination().Valid())
		})
	}
}

func TestExpense_CategoryField(t *testing.T) {
	data, err := json.Marshal(Expense{Date: "2024-01-31", Item: "국수", Kind: KindExpense, Category: "식비", Amount: 5000})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "식비", fields["category"])
	assert.Equal(t, "expense", fields["type"])
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range []Category{CategoryContacts, CategorySchedule, CategoryExpenses, CategoryDiary} {
		assert.True(t, c.Valid(), c)
	}
	for _, c := range []Category{"", "calendar", "Expenses", "가계부"} {
		assert.False(t, c.Valid(), c)
	}
}
