package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lifeone/internal/cli"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(cli.FormatTitle("lifeone"))
	b.WriteString("\n")

	for _, e := range m.transcript {
		b.WriteString(renderExchange(e))
		b.WriteString("\n\n")
	}

	switch m.state {
	case stateProcessing:
		b.WriteString(m.spinner.View() + " 처리 중...")
	case stateClarifying:
		b.WriteString(m.renderOptions())
	default:
		b.WriteString(m.input.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func renderExchange(e exchange) string {
	var b strings.Builder
	b.WriteString(cli.BoldStyle.Render("› " + e.input))
	b.WriteString("\n")

	if e.err != nil {
		b.WriteString(cli.FormatError(e.err.Error()))
		return b.String()
	}
	b.WriteString(cli.RenderResponse(e.resp))

	if e.resolution != nil {
		b.WriteString("\n")
		b.WriteString(cli.FormatSuccess(e.resolution.Answer))
		if records := cli.RenderExtraction(e.resolution.DataExtraction); records != "" {
			b.WriteString("\n" + records)
		}
	}
	if e.note != "" {
		b.WriteString("\n" + cli.SubtleStyle.Render(e.note))
	}
	return b.String()
}

func (m Model) renderOptions() string {
	options := m.transcript[len(m.transcript)-1].resp.ClarificationOptions

	lines := make([]string, 0, len(options))
	for i, opt := range options {
		line := fmt.Sprintf("  [%d] %s", i+1, opt)
		if i == m.cursor {
			line = cli.PromptStyle.Render(fmt.Sprintf("› [%d] %s", i+1, opt))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
