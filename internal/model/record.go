package model

import (
	"fmt"
	"strings"
)

// Record is a single extracted or stored personal-data item.
// The set of implementations is closed: Contact, ScheduleItem, Expense and DiaryEntry.
type Record interface {
	// Destination returns the category the record is stored under.
	Destination() Category
	// Summary renders the record as a single line of text.
	Summary() string
	isRecord()
}

// Contact is an address-book entry.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Group string `json:"group,omitempty"`
}

// ScheduleItem is a calendar entry. Date is YYYY-MM-DD, Time is HH:MM when known.
type ScheduleItem struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time,omitempty"`
}

// Expense is a ledger entry. Amount is in won.
type Expense struct {
	Date     string      `json:"date"`
	Item     string      `json:"item"`
	Kind     ExpenseKind `json:"type"`
	Category string      `json:"category,omitempty"`
	Amount   int64       `json:"amount"`
}

// DiaryEntry is a memo or diary entry.
type DiaryEntry struct {
	Date  string `json:"date"`
	Entry string `json:"entry"`
	Group string `json:"group,omitempty"`
}

// Destination implements Record.
func (Contact) Destination() Category { return CategoryContacts }

// Destination implements Record.
func (ScheduleItem) Destination() Category { return CategorySchedule }

// Destination implements Record.
func (Expense) Destination() Category { return CategoryExpenses }

// Destination implements Record.
func (DiaryEntry) Destination() Category { return CategoryDiary }

// Summary returns the name followed by the phone number, or the email when there is no phone.
func (c Contact) Summary() string {
	contact := c.Phone
	if contact == "" {
		contact = c.Email
	}
	return strings.TrimSpace(c.Name + " " + contact)
}

// Summary returns the title, date and time separated by spaces.
func (s ScheduleItem) Summary() string {
	return strings.TrimSpace(strings.Join([]string{s.Title, s.Date, s.Time}, " "))
}

// Summary returns the item followed by the amount in won, e.g. "국수 5000원".
func (e Expense) Summary() string {
	return fmt.Sprintf("%s %d원", e.Item, e.Amount)
}

// Summary returns the entry text.
func (d DiaryEntry) Summary() string {
	return d.Entry
}

func (Contact) isRecord()      {}
func (ScheduleItem) isRecord() {}
func (Expense) isRecord()      {}
func (DiaryEntry) isRecord()   {}
