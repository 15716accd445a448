package llm

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Veraticus/lifeone/internal/entity"
	"github.com/Veraticus/lifeone/internal/model"
)

// flexAmount accepts a JSON number or a string such as "5,000원" or "3만원".
type flexAmount int64

func (a *flexAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if data[0] != '"' {
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*a = flexAmount(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if n, ok := entity.ParseAmount(s); ok {
		*a = flexAmount(n)
		return nil
	}
	if n, ok := entity.ParseNumber(s); ok {
		*a = flexAmount(n)
		return nil
	}
	*a = 0
	return nil
}

// flexString accepts a JSON string or number. Other values decode as empty.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = flexString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*s = flexString(n.String())
		return nil
	}
	*s = ""
	return nil
}

func (s flexString) trim() string {
	return strings.TrimSpace(string(s))
}

type rawExtraction struct {
	Schedule *[]struct {
		Title flexString `json:"title"`
		Date  flexString `json:"date"`
		Time  flexString `json:"time"`
	} `json:"schedule"`
	Contacts *[]struct {
		Name  flexString `json:"name"`
		Phone flexString `json:"phone"`
		Email flexString `json:"email"`
		Group flexString `json:"group"`
	} `json:"contacts"`
	Expenses *[]struct {
		Date     flexString `json:"date"`
		Item     flexString `json:"item"`
		Type     flexString `json:"type"`
		Category flexString `json:"category"`
		Amount   flexAmount `json:"amount"`
	} `json:"expenses"`
	Diary *[]struct {
		Date  flexString `json:"date"`
		Entry flexString `json:"entry"`
		Group flexString `json:"group"`
	} `json:"diary"`
}

// ParseExtraction decodes a model continuation into an extraction result. It reports
// false when the continuation holds no JSON object naming at least one of the four
// categories. Records missing their defining field are dropped.
func ParseExtraction(raw string) (model.ExtractionResult, bool) {
	span, ok := outermostObject(cleanMarkdownWrapper(raw))
	if !ok {
		return model.ExtractionResult{}, false
	}

	var parsed rawExtraction
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		slog.Debug("continuation is not valid JSON", "error", err)
		return model.ExtractionResult{}, false
	}
	if parsed.Schedule == nil && parsed.Contacts == nil && parsed.Expenses == nil && parsed.Diary == nil {
		return model.ExtractionResult{}, false
	}

	res := model.NewExtractionResult()

	if parsed.Schedule != nil {
		for _, s := range *parsed.Schedule {
			if s.Title.trim() == "" {
				continue
			}
			res.Add(model.ScheduleItem{Title: s.Title.trim(), Date: s.Date.trim(), Time: s.Time.trim()})
		}
	}

	if parsed.Contacts != nil {
		for _, c := range *parsed.Contacts {
			if c.Name.trim() == "" && c.Phone.trim() == "" && c.Email.trim() == "" {
				continue
			}
			res.Add(model.Contact{
				Name:  c.Name.trim(),
				Phone: c.Phone.trim(),
				Email: c.Email.trim(),
				Group: orDefault(c.Group.trim(), model.DefaultGroup),
			})
		}
	}

	if parsed.Expenses != nil {
		for _, e := range *parsed.Expenses {
			if e.Item.trim() == "" && e.Amount == 0 {
				continue
			}
			kind := model.KindExpense
			if strings.EqualFold(e.Type.trim(), string(model.KindIncome)) {
				kind = model.KindIncome
			}
			res.Add(model.Expense{
				Date:     e.Date.trim(),
				Item:     e.Item.trim(),
				Kind:     kind,
				Category: orDefault(e.Category.trim(), model.ExpenseCategoryOther),
				Amount:   int64(e.Amount),
			})
		}
	}

	if parsed.Diary != nil {
		for _, d := range *parsed.Diary {
			if d.Entry.trim() == "" {
				continue
			}
			res.Add(model.DiaryEntry{
				Date:  d.Date.trim(),
				Entry: d.Entry.trim(),
				Group: orDefault(d.Group.trim(), model.DefaultGroup),
			})
		}
	}

	return res, true
}

// cleanMarkdownWrapper removes a ```json fence around the payload, if any.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```")
	if nl := strings.IndexByte(content, '\n'); nl >= 0 {
		content = content[nl+1:]
	}
	if end := strings.LastIndex(content, "```"); end >= 0 {
		content = content[:end]
	}
	return strings.TrimSpace(content)
}

// outermostObject returns the span from the first '{' to the last '}'.
func outermostObject(content string) (string, bool) {
	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return content[start : end+1], true
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
