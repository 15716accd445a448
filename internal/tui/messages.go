package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/lifeone/internal/model"
)

type processedMsg struct {
	err   error
	input string
	resp  model.ProcessResponse
}

type clarifiedMsg struct {
	err  error
	resp model.ClarifyResponse
}

func processCmd(ctx context.Context, p Processor, text string, snap model.Snapshot) tea.Cmd {
	return func() tea.Msg {
		resp, err := p.Process(ctx, model.ProcessRequest{Text: text, ContextData: &snap})
		return processedMsg{input: text, resp: resp, err: err}
	}
}

func clarifyCmd(p Processor, answer string, pending model.ExtractionResult) tea.Cmd {
	return func() tea.Msg {
		resp, err := p.Clarify(model.ClarifyRequest{Answer: answer, Pending: &pending})
		return clarifiedMsg{resp: resp, err: err}
	}
}
