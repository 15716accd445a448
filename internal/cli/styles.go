// Package cli provides styled terminal output and interactive input for lifeone.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/lifeone/internal/model"
)

// Palette.
var (
	PrimaryColor = lipgloss.Color("#5B8DEF")
	SuccessColor = lipgloss.Color("#4ECDC4")
	WarningColor = lipgloss.Color("#FFE66D")
	ErrorColor   = lipgloss.Color("#FF6B6B")
	InfoColor    = lipgloss.Color("#95E1D3")
	SubtleColor  = lipgloss.Color("#666666")
	BorderColor  = lipgloss.Color("#333333")
)

// categoryColors tints the section header of each record category.
var categoryColors = map[model.Category]lipgloss.Color{
	model.CategoryContacts: lipgloss.Color("#C3A6FF"),
	model.CategorySchedule: lipgloss.Color("#5B8DEF"),
	model.CategoryExpenses: lipgloss.Color("#F7B267"),
	model.CategoryDiary:    lipgloss.Color("#95E1D3"),
}

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).MarginBottom(1)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(SubtleColor)
	BoldStyle    = lipgloss.NewStyle().Bold(true)
	PromptStyle  = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)

	// BoxStyle frames clarification questions.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// TableHeaderStyle underlines the history table header.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(BorderColor)

	TableCellStyle = lipgloss.NewStyle().PaddingRight(2)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	RemoteIcon  = "☁️"
	LocalIcon   = "💾"
)

// CategoryStyle returns the header style for a record category.
func CategoryStyle(c model.Category) lipgloss.Style {
	color, ok := categoryColors[c]
	if !ok {
		return BoldStyle
	}
	return BoldStyle.Foreground(color)
}

func FormatSuccess(message string) string { return SuccessStyle.Render(SuccessIcon + " " + message) }
func FormatError(message string) string   { return ErrorStyle.Render(ErrorIcon + " " + message) }
func FormatWarning(message string) string { return WarningStyle.Render(WarningIcon + " " + message) }
func FormatInfo(message string) string    { return InfoStyle.Render(InfoIcon + " " + message) }
func FormatTitle(title string) string     { return TitleStyle.Render(title) }

// FormatPrompt renders an input prompt followed by an arrow.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + " → ")
}

// RenderBox renders content under a title inside a rounded border.
func RenderBox(title, content string) string {
	header := TitleStyle.UnsetMargins().Render(title)
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, content))
}
