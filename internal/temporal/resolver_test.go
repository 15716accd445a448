package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/lifeone/internal/rules"
)

// anchorAt builds an anchor from a Seoul wall-clock time.
func anchorAt(t *testing.T, value string) Anchor {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, Location)
	require.NoError(t, err)
	return NewAnchor(ts)
}

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver(rules.Default())
	// 2024-01-31 is a Wednesday in a leap year.
	wednesday := anchorAt(t, "2024-01-31 10:00")

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "tomorrow", text: "내일 회의", want: "2024-02-01", wantOK: true},
		{name: "today", text: "오늘 점심", want: "2024-01-31", wantOK: true},
		{name: "yesterday", text: "어제 국수 먹었어", want: "2024-01-30", wantOK: true},
		{name: "day before yesterday", text: "그저께 택시", want: "2024-01-29", wantOK: true},
		{name: "day before yesterday short form", text: "그제 영화", want: "2024-01-29", wantOK: true},
		{name: "day after tomorrow", text: "모레 약속", want: "2024-02-02", wantOK: true},
		{name: "days after", text: "3일 후 병원", want: "2024-02-03", wantOK: true},
		{name: "days before", text: "10일 전에 샀어", want: "2024-01-21", wantOK: true},
		{name: "weeks before", text: "2주 전 회식", want: "2024-01-17", wantOK: true},
		{name: "weeks after", text: "1주 후 마감", want: "2024-02-07", wantOK: true},
		{name: "next week without weekday", text: "다음주 출장", want: "2024-02-07", wantOK: true},
		{name: "next week colloquial", text: "담주 출장", want: "2024-02-07", wantOK: true},
		{name: "last week without weekday", text: "지난주 모임", want: "2024-01-24", wantOK: true},
		{name: "this week without weekday", text: "이번주 발표", want: "2024-01-31", wantOK: true},
		{name: "next week same weekday", text: "다음주 수요일 회의", want: "2024-02-14", wantOK: true},
		{name: "next week earlier weekday", text: "다음주 월요일 회의", want: "2024-02-12", wantOK: true},
		{name: "next week later weekday", text: "다음주 금요일 회의", want: "2024-02-09", wantOK: true},
		{name: "last week weekday", text: "지난주 금요일 저녁", want: "2024-01-19", wantOK: true},
		{name: "last week same weekday", text: "저번주 수요일", want: "2024-01-17", wantOK: true},
		{name: "this week weekday", text: "이번주 금요일", want: "2024-02-02", wantOK: true},
		{name: "unqualified weekday", text: "금요일 약속", want: "2024-02-02", wantOK: true},
		{name: "unqualified same weekday rolls a week", text: "수요일 약속", want: "2024-02-07", wantOK: true},
		{name: "short weekday after week marker", text: "다음주 금 회의", want: "2024-02-09", wantOK: true},
		{name: "short weekday followed by syllable is not a weekday", text: "다음주 월급날", want: "2024-02-07", wantOK: true},
		{name: "short sunday guarded against schedule word", text: "다음주 일정 잡아줘", want: "2024-02-07", wantOK: true},
		{name: "month offset clamps to leap day", text: "1개월 후 정산", want: "2024-02-29", wantOK: true},
		{name: "month offset without 개", text: "2월 후", want: "2024-03-31", wantOK: true},
		{name: "month offset backwards across year", text: "2개월 전", want: "2023-11-30", wantOK: true},
		{name: "next month with day", text: "다음달 15일 여행", want: "2024-02-15", wantOK: true},
		{name: "last month with day", text: "지난달 5일", want: "2023-12-05", wantOK: true},
		{name: "this month with day", text: "이번달 20일", want: "2024-01-20", wantOK: true},
		{name: "next month with invalid day", text: "다음달 30일", wantOK: false},
		{name: "next month without day clamps", text: "다음달 회비", want: "2024-02-29", wantOK: true},
		{name: "this month without day", text: "이번달 회비", want: "2024-01-31", wantOK: true},
		{name: "month and day in the future", text: "3월 1일 행사", want: "2024-03-01", wantOK: true},
		{name: "month and day in the past rolls forward", text: "1월 5일 행사", want: "2025-01-05", wantOK: true},
		{name: "month and day today stays", text: "1월 31일 행사", want: "2024-01-31", wantOK: true},
		{name: "month and day last year", text: "작년 3월 1일", want: "2023-03-01", wantOK: true},
		{name: "month and day next year", text: "내년 1월 5일", want: "2025-01-05", wantOK: true},
		{name: "month and day this year does not roll", text: "올해 1월 5일", want: "2024-01-05", wantOK: true},
		{name: "invalid month and day", text: "2월 30일", wantOK: false},
		{name: "last year", text: "작년 이맘때", want: "2023-01-31", wantOK: true},
		{name: "next year", text: "내년 계획", want: "2025-01-31", wantOK: true},
		{name: "no expression", text: "국수 5000원", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolver.Resolve(tt.text, wednesday)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestResolver_MonthOffsetNonLeapYear(t *testing.T) {
	resolver := NewResolver(rules.Default())

	got, ok := resolver.Resolve("1개월 후", anchorAt(t, "2023-01-31 09:00"))
	require.True(t, ok)
	assert.Equal(t, "2023-02-28", got.String())
}

func TestResolver_YearBoundaries(t *testing.T) {
	resolver := NewResolver(rules.Default())
	december := anchorAt(t, "2024-12-15 18:00")

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "next month crosses year", text: "다음달", want: "2025-01-15"},
		{name: "next month day crosses year", text: "다음달 3일", want: "2025-01-03"},
		{name: "tomorrow", text: "내일", want: "2024-12-16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolver.Resolve(tt.text, december)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}

	leapDay := anchorAt(t, "2024-02-29 12:00")
	got, ok := resolver.Resolve("내년", leapDay)
	require.True(t, ok)
	assert.Equal(t, "2025-02-28", got.String())
}

func TestResolver_RelativeToAnyAnchor(t *testing.T) {
	resolver := NewResolver(rules.Default())

	for _, value := range []string{"2024-01-01 00:05", "2024-06-30 23:59", "2025-03-01 12:00"} {
		a := anchorAt(t, value)

		tomorrow, ok := resolver.Resolve("내일", a)
		require.True(t, ok)
		assert.Equal(t, a.Date().AddDays(1), tomorrow)

		twoDaysAgo, ok := resolver.Resolve("그저께", a)
		require.True(t, ok)
		assert.Equal(t, a.Date().AddDays(-2), twoDaysAgo)

		nextWeekSameDay, ok := resolver.Resolve("다음주 "+resolver.rules.Weekdays[a.WeekdayIndex()], a)
		require.True(t, ok)
		assert.Equal(t, a.Date().AddDays(14), nextWeekSameDay)
	}
}

func TestResolver_Idempotent(t *testing.T) {
	resolver := NewResolver(rules.Default())
	a := anchorAt(t, "2024-01-31 10:00")

	for _, text := range []string{"다음주 금요일 회의", "1개월 후", "국수 5000원", "다음달 30일"} {
		d1, ok1 := resolver.Resolve(text, a)
		d2, ok2 := resolver.Resolve(text, a)
		assert.Equal(t, ok1, ok2, text)
		assert.Equal(t, d1, d2, text)
	}
}

func TestResolver_RuleNames(t *testing.T) {
	resolver := NewResolver(rules.Default())
	names := resolver.RuleNames()

	require.Len(t, names, 9)
	assert.Equal(t, "day_marker", names[0])
	assert.Equal(t, "year_relative", names[len(names)-1])
}

func TestAnchor(t *testing.T) {
	utc := time.Date(2024, 3, 1, 16, 30, 0, 0, time.UTC)
	a := NewAnchor(utc)

	assert.Equal(t, "2024-03-02", a.Date().String())
	assert.Equal(t, "2024-03-02 01:30", a.DateTime())
	assert.Equal(t, "토", a.WeekdayName())
	assert.Equal(t, 5, a.WeekdayIndex())
}
