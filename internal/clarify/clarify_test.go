package clarify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/lifeone/internal/common"
	"github.com/Veraticus/lifeone/internal/model"
)

func pendingMeeting(clock string) model.ExtractionResult {
	res := model.NewExtractionResult()
	res.Schedule = append(res.Schedule, model.ScheduleItem{Title: "팀 미팅", Date: "2024-02-01", Time: clock})
	hour := 3
	res.Clarification = model.ClarificationState{Needed: true, AmbiguousHour: &hour}
	return res
}

func TestApply_Hour(t *testing.T) {
	tests := []struct {
		name     string
		clock    string
		answer   string
		wantTime string
		wantMsg  string
	}{
		{name: "afternoon adds twelve", clock: "03:00", answer: "오후", wantTime: "15:00", wantMsg: `"팀 미팅" 일정이 오후 3시 (15:00)로 저장되었습니다.`},
		{name: "morning keeps hour", clock: "03:00", answer: "오전", wantTime: "03:00", wantMsg: `"팀 미팅" 일정이 오전 3시 (03:00)로 저장되었습니다.`},
		{name: "noon stays noon in the afternoon", clock: "12:00", answer: "오후", wantTime: "12:00"},
		{name: "midnight in the morning", clock: "12:00", answer: "오전", wantTime: "00:00"},
		{name: "minutes are kept", clock: "07:30", answer: "오후", wantTime: "19:30"},
		{name: "answer is trimmed", clock: "09:00", answer: " 오후 ", wantTime: "21:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pending := pendingMeeting(tt.clock)

			got, msg, err := Apply(pending, tt.answer)
			require.NoError(t, err)
			require.Len(t, got.Schedule, 1)
			assert.Equal(t, tt.wantTime, got.Schedule[0].Time)
			assert.False(t, got.Clarification.Needed)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, msg)
			}
			assert.Equal(t, tt.clock, pending.Schedule[0].Time, "pending must not change")
		})
	}
}

func TestApply_HourLeavesUnambiguousTimes(t *testing.T) {
	pending := pendingMeeting("15:00")

	got, msg, err := Apply(pending, "오후")
	require.NoError(t, err)
	assert.Equal(t, "15:00", got.Schedule[0].Time)
	assert.Equal(t, "입력을 처리했습니다.", msg)
}

func TestApply_Category(t *testing.T) {
	pending := model.NewExtractionResult()
	pending.Schedule = append(pending.Schedule, model.ScheduleItem{Title: "점심 미팅", Date: "2024-02-01"})
	pending.Expenses = append(pending.Expenses, model.Expense{Item: "국수", Amount: 8000, Kind: model.KindExpense})
	pending.Clarification = model.ClarificationState{
		Needed:              true,
		AmbiguousCategories: []model.Category{model.CategorySchedule, model.CategoryExpenses},
	}

	tests := []struct {
		name    string
		answer  string
		wantMsg string
		want    model.Category
	}{
		{name: "ledger", answer: "가계부", want: model.CategoryExpenses, wantMsg: "가계부에 저장했습니다."},
		{name: "schedule", answer: "일정", want: model.CategorySchedule, wantMsg: "일정에 저장했습니다."},
		{name: "memo keeps nothing from other categories", answer: "메모", want: model.CategoryDiary, wantMsg: "메모에 저장했습니다."},
		{name: "category key", answer: "expenses", want: model.CategoryExpenses, wantMsg: "가계부에 저장했습니다."},
		{name: "category key is trimmed", answer: " schedule ", want: model.CategorySchedule, wantMsg: "일정에 저장했습니다."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg, err := Apply(pending, tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMsg, msg)
			assert.False(t, got.Clarification.Needed)
			for _, c := range got.Populated() {
				assert.Equal(t, tt.want, c)
			}
		})
	}

	assert.Len(t, pending.Schedule, 1)
	assert.Len(t, pending.Expenses, 1)
}

func TestApply_UnknownAnswer(t *testing.T) {
	for _, answer := range []string{"저녁", "calendar", "Expenses", ""} {
		_, _, err := Apply(pendingMeeting("03:00"), answer)
		require.Error(t, err, answer)
		assert.ErrorIs(t, err, common.ErrUnknownClarification)
	}
}
