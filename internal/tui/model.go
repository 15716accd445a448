// Package tui is an interactive terminal front-end for the extraction engine.
package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/lifeone/internal/model"
)

// Processor is the part of the engine the TUI drives.
type Processor interface {
	Process(ctx context.Context, req model.ProcessRequest) (model.ProcessResponse, error)
	Clarify(req model.ClarifyRequest) (model.ClarifyResponse, error)
}

type state int

const (
	stateInput state = iota
	stateProcessing
	stateClarifying
)

// maxTranscript is how many exchanges stay on screen.
const maxTranscript = 6

// exchange is one utterance with its outcome.
type exchange struct {
	err        error
	resolution *model.ClarifyResponse
	input      string
	note       string
	resp       model.ProcessResponse
}

// Model holds the TUI state.
type Model struct {
	ctx        context.Context
	processor  Processor
	help       help.Model
	keys       KeyMap
	input      textinput.Model
	spinner    spinner.Model
	transcript []exchange
	snapshot   model.Snapshot
	cursor     int
	width      int
	state      state
	quitting   bool
}

// New creates the model.
func New(ctx context.Context, processor Processor, snapshot model.Snapshot) Model {
	ti := textinput.New()
	ti.Placeholder = "예: 어제 국수 5000원, 내일 3시 회의"
	ti.CharLimit = 2000
	ti.Prompt = "› "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		processor: processor,
		snapshot:  snapshot,
		input:     ti,
		spinner:   sp,
		help:      help.New(),
		keys:      DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case processedMsg:
		m.transcript = appendExchange(m.transcript, exchange{input: msg.input, resp: msg.resp, err: msg.err})
		if msg.err == nil && msg.resp.ClarificationNeeded && len(msg.resp.ClarificationOptions) > 0 {
			m.state = stateClarifying
			m.cursor = 0
			return m, nil
		}
		m.state = stateInput
		return m, textinput.Blink

	case clarifiedMsg:
		if n := len(m.transcript); n > 0 {
			if msg.err != nil {
				m.transcript[n-1].err = msg.err
			} else {
				resolved := msg.resp
				m.transcript[n-1].resolution = &resolved
			}
		}
		m.state = stateInput
		return m, textinput.Blink

	case spinner.TickMsg:
		if m.state != stateProcessing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case stateProcessing:
		return m, nil
	case stateClarifying:
		return m.handleClarifyKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.input.Reset()
		m.state = stateProcessing
		return m, tea.Batch(m.spinner.Tick, processCmd(m.ctx, m.processor, text, m.snapshot))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleClarifyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := &m.transcript[len(m.transcript)-1]
	options := last.resp.ClarificationOptions

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(options)) % len(options)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(options)
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		last.note = "선택하지 않았습니다."
		m.state = stateInput
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Submit):
		return m.choose(options[m.cursor])
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if n, err := strconv.Atoi(string(msg.Runes)); err == nil && n >= 1 && n <= len(options) {
			return m.choose(options[n-1])
		}
	}
	return m, nil
}

func (m Model) choose(answer string) (tea.Model, tea.Cmd) {
	pending := m.transcript[len(m.transcript)-1].resp.DataExtraction
	m.state = stateProcessing
	return m, tea.Batch(m.spinner.Tick, clarifyCmd(m.processor, answer, pending))
}

func appendExchange(list []exchange, e exchange) []exchange {
	list = append(list, e)
	if len(list) > maxTranscript {
		list = list[len(list)-maxTranscript:]
	}
	return list
}
