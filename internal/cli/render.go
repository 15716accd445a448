package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Veraticus/lifeone/internal/model"
)

var korean = message.NewPrinter(language.Korean)

// RenderResponse formats a processing response for the terminal.
func RenderResponse(resp model.ProcessResponse) string {
	var b strings.Builder

	switch {
	case !resp.CanHandle:
		b.WriteString(FormatInfo(RemoteIcon + " " + resp.ProcessingDetails))
	case resp.ClarificationNeeded:
		b.WriteString(FormatWarning(resp.Answer))
	default:
		b.WriteString(FormatSuccess(resp.Answer))
	}
	b.WriteString("\n")

	if records := RenderExtraction(resp.DataExtraction); records != "" {
		b.WriteString(records)
		b.WriteString("\n")
	}

	b.WriteString(SubtleStyle.Render(fmt.Sprintf("model=%s  %s", resp.UsedModel, resp.ProcessingDetails)))
	return b.String()
}

// RenderExtraction lists the records of res grouped by category, or returns
// an empty string when there are none.
func RenderExtraction(res model.ExtractionResult) string {
	sections := lo.Compact([]string{
		section(model.CategoryExpenses, lo.Map(res.Expenses, func(e model.Expense, _ int) string {
			kind := "지출"
			if e.Kind == model.KindIncome {
				kind = "수입"
			}
			return korean.Sprintf("%s  %s %d원 (%s, %s)", e.Date, e.Item, e.Amount, kind, e.Category)
		})),
		section(model.CategorySchedule, lo.Map(res.Schedule, func(s model.ScheduleItem, _ int) string {
			return strings.TrimSpace(fmt.Sprintf("%s %s  %s", s.Date, s.Time, s.Title))
		})),
		section(model.CategoryContacts, lo.Map(res.Contacts, func(c model.Contact, _ int) string {
			return c.Summary()
		})),
		section(model.CategoryDiary, lo.Map(res.Diary, func(d model.DiaryEntry, _ int) string {
			return fmt.Sprintf("%s  [%s] %s", d.Date, d.Group, d.Entry)
		})),
	})
	return strings.Join(sections, "\n")
}

func section(c model.Category, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	items := lo.Map(lines, func(line string, _ int) string { return "  • " + line })
	return CategoryStyle(c).Render(c.Label()) + "\n" + strings.Join(items, "\n")
}

// RenderDecision formats a routing decision.
func RenderDecision(d model.RoutingDecision) string {
	if d.CanHandle {
		return FormatSuccess(fmt.Sprintf("%s local (%s) %s", LocalIcon, d.Reason, d.Reason.Message()))
	}
	return FormatInfo(fmt.Sprintf("%s remote (%s) %s", RemoteIcon, d.Reason, d.Reason.Message()))
}

// RenderHistory formats history entries as a table, newest first.
func RenderHistory(entries []model.HistoryEntry) string {
	if len(entries) == 0 {
		return SubtleStyle.Render("기록이 없습니다.")
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		TableCellStyle.Width(20).Render("시간"),
		TableCellStyle.Width(26).Render("모델"),
		TableCellStyle.Render("입력"),
	)

	rows := lo.Map(entries, func(e model.HistoryEntry, _ int) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			TableCellStyle.Width(20).Render(e.CreatedAt.Local().Format("2006-01-02 15:04")),
			TableCellStyle.Width(26).Render(e.UsedModel),
			TableCellStyle.Render(e.Input),
		)
	})

	return TableHeaderStyle.Render(header) + "\n" + strings.Join(rows, "\n")
}
