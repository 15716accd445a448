// Package rules holds the keyword tables that drive routing, date resolution and extraction.
//
// A Rules value is built once at startup with Default and shared by pointer between
// components. Nothing mutates it after construction, so it is safe for concurrent use.
package rules

import (
	"github.com/Veraticus/lifeone/internal/model"
)

// DayMarker maps words such as 내일 to a day offset from the anchor.
type DayMarker struct {
	Words  []string
	Offset int
}

// ExpenseCategoryRule assigns Category when any keyword appears in the text.
type ExpenseCategoryRule struct {
	Category string
	Keywords []string
}

// CategoryPhrase lists the surface phrases that refer to a canonical category.
type CategoryPhrase struct {
	Category model.Category
	Phrases  []string
}

// Rules is the immutable set of keyword tables.
type Rules struct {
	DayMarkers []DayMarker

	LastWeek  []string
	ThisWeek  []string
	NextWeek  []string
	LastMonth []string
	ThisMonth []string
	NextMonth []string
	LastYear  []string
	ThisYear  []string
	NextYear  []string

	// Weekdays and ShortWeekdays are indexed Monday=0 .. Sunday=6.
	Weekdays      []string
	ShortWeekdays []string

	MediaKeywords          []string
	ModificationKeywords   []string
	DeletionKeywords       []string
	WorldKnowledgeKeywords []string
	PersonalDataKeywords   []string
	LocalKeywords          []string
	ComplexQueryLength     int

	ActionVerbs   []string
	ItemStopWords []string

	IncomeKeywords    []string
	ExpenseCategories []ExpenseCategoryRule

	ScheduleKeywords []string
	ScheduleVerbs    []string
	ScheduleNouns    []string
	Particles        []string

	MemoKeywords []string
	MemoVerbs    []string
	SaveVerbs    []string

	CategoryPhrases   []CategoryPhrase
	CrossRefOrder     []model.Category
	GenericItemNames  []string
	DefaultItemName   string
	DefaultContact    string
	UnnamedContact    string
	TitleFallbackRune int
}

// Default returns the Korean rule tables.
func Default() *Rules {
	return &Rules{
		DayMarkers: []DayMarker{
			{Words: []string{"그저께", "그제"}, Offset: -2},
			{Words: []string{"어제"}, Offset: -1},
			{Words: []string{"오늘"}, Offset: 0},
			{Words: []string{"내일"}, Offset: 1},
			{Words: []string{"모레"}, Offset: 2},
		},

		LastWeek:  []string{"지난주", "저번주"},
		ThisWeek:  []string{"이번주"},
		NextWeek:  []string{"다음주", "담주"},
		LastMonth: []string{"지난달", "저번달"},
		ThisMonth: []string{"이번달"},
		NextMonth: []string{"다음달", "담달"},
		LastYear:  []string{"작년", "지난해"},
		ThisYear:  []string{"올해", "이번해"},
		NextYear:  []string{"내년", "다음해"},

		Weekdays:      []string{"월요일", "화요일", "수요일", "목요일", "금요일", "토요일", "일요일"},
		ShortWeekdays: []string{"월", "화", "수", "목", "금", "토", "일"},

		MediaKeywords:          []string{"영수증", "사진", "이미지"},
		ModificationKeywords:   []string{"수정", "변경", "바꿔", "고쳐"},
		DeletionKeywords:       []string{"삭제", "지워", "제거"},
		WorldKnowledgeKeywords: []string{"날씨", "뉴스", "검색", "찾아줘", "gta6", "발매일"},
		PersonalDataKeywords:   []string{"일정", "연락처", "가계부", "메모", "다이어리"},
		LocalKeywords: []string{
			"일정", "연락처", "가계부", "메모", "다이어리", "저장", "추가", "등록",
			"예약", "약속", "미팅", "회의", "지출", "수입",
			"먹었어", "샀어", "구매", "만났어",
		},
		ComplexQueryLength: 50,

		ActionVerbs: []string{"먹었어", "샀어", "구매했어", "지출했어", "받았어", "냈어", "썼어", "했어"},
		ItemStopWords: []string{
			"항목", "내역", "이름", "금액", "비용", "가격", "돈", "원",
			"오늘", "어제", "내일", "모레", "그저께",
			"다음주", "이번주", "지난주", "저번주",
			"다음달", "이번달", "지난달", "저번달",
			"작년", "내년", "올해", "지난해", "다음해", "이번해",
			"먹었어", "샀어", "구매", "지출", "수입", "받았어", "냈어",
			"교통비", "식비",
		},

		IncomeKeywords: []string{"받았어", "수입", "월급", "급여"},
		ExpenseCategories: []ExpenseCategoryRule{
			{Category: model.ExpenseCategoryFood, Keywords: []string{"먹었어", "식사", "음식", "밥", "국수", "저녁", "점심", "아침", "식비"}},
			{Category: model.ExpenseCategoryTransport, Keywords: []string{"교통비", "버스", "지하철", "택시", "기름", "주유", "교통"}},
			{Category: model.ExpenseCategoryShopping, Keywords: []string{"쇼핑", "옷", "구매", "샀어"}},
			{Category: model.ExpenseCategorySalary, Keywords: []string{"월급", "급여", "수입", "용돈"}},
		},

		ScheduleKeywords: []string{"일정", "예약", "약속", "미팅", "회의", "있어", "있다"},
		ScheduleVerbs:    []string{"있어", "있다", "있음", "합니다"},
		ScheduleNouns:    []string{"프로젝트", "회의", "미팅", "약속", "일정", "예약"},
		Particles:        []string{"에서", "에", "을", "를", "이", "가"},

		MemoKeywords: []string{"메모장", "메모", "다이어리", "일기", "기록"},
		MemoVerbs:    []string{"저장해줘", "저장", "적어줘", "남겨줘", "써줘", "추가해줘", "등록해줘"},
		SaveVerbs:    []string{"저장", "추가", "등록"},

		CategoryPhrases: []CategoryPhrase{
			{Category: model.CategoryDiary, Phrases: []string{"메모장", "메모", "다이어리", "일기", "기록"}},
			{Category: model.CategorySchedule, Phrases: []string{"일정", "스케줄", "약속", "예약"}},
			{Category: model.CategoryExpenses, Phrases: []string{"가계부", "지출", "수입", "경비"}},
			{Category: model.CategoryContacts, Phrases: []string{"주소록", "연락처", "전화번호"}},
		},
		CrossRefOrder: []model.Category{
			model.CategoryExpenses, model.CategoryContacts, model.CategorySchedule, model.CategoryDiary,
		},
		GenericItemNames:  []string{"항목", "내역", "이름"},
		DefaultItemName:   "지출 항목",
		DefaultContact:    "연락처",
		UnnamedContact:    "이름 없음",
		TitleFallbackRune: 20,
	}
}
