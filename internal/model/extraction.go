package model

import "encoding/json"

// Snapshot is the caller-supplied, read-only view of previously stored records.
type Snapshot struct {
	Contacts []Contact      `json:"contacts"`
	Schedule []ScheduleItem `json:"schedule"`
	Expenses []Expense      `json:"expenses"`
	Diary    []DiaryEntry   `json:"diary"`
}

// ClarificationState describes what, if anything, the caller must disambiguate
// before an extraction result is final.
type ClarificationState struct {
	AmbiguousHour       *int       `json:"ambiguousHour,omitempty"`
	Question            string     `json:"question,omitempty"`
	Options             []string   `json:"options,omitempty"`
	AmbiguousCategories []Category `json:"ambiguousCategories,omitempty"`
	Needed              bool       `json:"needed"`
}

// ExtractionResult holds the records derived from a single utterance.
type ExtractionResult struct {
	Contacts      []Contact          `json:"contacts"`
	Schedule      []ScheduleItem     `json:"schedule"`
	Expenses      []Expense          `json:"expenses"`
	Diary         []DiaryEntry       `json:"diary"`
	Clarification ClarificationState `json:"-"`
}

// NewExtractionResult returns a result whose four lists are empty rather than nil.
func NewExtractionResult() ExtractionResult {
	return ExtractionResult{
		Contacts: []Contact{},
		Schedule: []ScheduleItem{},
		Expenses: []Expense{},
		Diary:    []DiaryEntry{},
	}
}

// Add appends a record to the list matching its concrete type.
func (r *ExtractionResult) Add(rec Record) {
	switch v := rec.(type) {
	case Contact:
		r.Contacts = append(r.Contacts, v)
	case ScheduleItem:
		r.Schedule = append(r.Schedule, v)
	case Expense:
		r.Expenses = append(r.Expenses, v)
	case DiaryEntry:
		r.Diary = append(r.Diary, v)
	}
}

// Records returns every record in category check order.
func (r ExtractionResult) Records() []Record {
	out := make([]Record, 0, r.Len())
	for _, c := range r.Contacts {
		out = append(out, c)
	}
	for _, s := range r.Schedule {
		out = append(out, s)
	}
	for _, e := range r.Expenses {
		out = append(out, e)
	}
	for _, d := range r.Diary {
		out = append(out, d)
	}
	return out
}

// Len returns the total number of records across all categories.
func (r ExtractionResult) Len() int {
	return len(r.Contacts) + len(r.Schedule) + len(r.Expenses) + len(r.Diary)
}

// Empty reports whether no category holds a record.
func (r ExtractionResult) Empty() bool {
	return r.Len() == 0
}

// Populated lists the categories holding at least one record, in check order.
func (r ExtractionResult) Populated() []Category {
	var cats []Category
	if len(r.Contacts) > 0 {
		cats = append(cats, CategoryContacts)
	}
	if len(r.Schedule) > 0 {
		cats = append(cats, CategorySchedule)
	}
	if len(r.Expenses) > 0 {
		cats = append(cats, CategoryExpenses)
	}
	if len(r.Diary) > 0 {
		cats = append(cats, CategoryDiary)
	}
	return cats
}

// Only returns a copy of the result restricted to a single category.
func (r ExtractionResult) Only(c Category) ExtractionResult {
	out := NewExtractionResult()
	switch c {
	case CategoryContacts:
		out.Contacts = append(out.Contacts, r.Contacts...)
	case CategorySchedule:
		out.Schedule = append(out.Schedule, r.Schedule...)
	case CategoryExpenses:
		out.Expenses = append(out.Expenses, r.Expenses...)
	case CategoryDiary:
		out.Diary = append(out.Diary, r.Diary...)
	}
	return out
}

// Clone returns a deep copy of the record lists and clarification state.
func (r ExtractionResult) Clone() ExtractionResult {
	out := NewExtractionResult()
	out.Contacts = append(out.Contacts, r.Contacts...)
	out.Schedule = append(out.Schedule, r.Schedule...)
	out.Expenses = append(out.Expenses, r.Expenses...)
	out.Diary = append(out.Diary, r.Diary...)
	out.Clarification = r.Clarification
	out.Clarification.Options = append([]string(nil), r.Clarification.Options...)
	out.Clarification.AmbiguousCategories = append([]Category(nil), r.Clarification.AmbiguousCategories...)
	if r.Clarification.AmbiguousHour != nil {
		h := *r.Clarification.AmbiguousHour
		out.Clarification.AmbiguousHour = &h
	}
	return out
}

// MarshalJSON always emits the four lists as arrays, never null.
func (r ExtractionResult) MarshalJSON() ([]byte, error) {
	type plain ExtractionResult
	p := plain(r)
	if p.Contacts == nil {
		p.Contacts = []Contact{}
	}
	if p.Schedule == nil {
		p.Schedule = []ScheduleItem{}
	}
	if p.Expenses == nil {
		p.Expenses = []Expense{}
	}
	if p.Diary == nil {
		p.Diary = []DiaryEntry{}
	}
	return json.Marshal(p)
}
