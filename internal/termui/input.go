package termui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel asks for one line of text. Submitting an empty line dismisses
// it.
type inputModel struct {
	prompt   string
	input    textinput.Model
	validate func(string) string
	err      string

	done     bool
	canceled bool

	more   func()
	styles promptStyles
}

func newInputModel(prompt string, validate func(string) string, styles promptStyles) inputModel {
	ti := textinput.New()
	ti.Prompt = prompt + ": "
	ti.PromptStyle = styles.selected
	ti.CharLimit = 256
	ti.Focus()

	return inputModel{
		prompt:   prompt,
		input:    ti,
		validate: validate,
		more:     func() {},
		styles:   styles,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Value returns the trimmed text.
func (m inputModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Cancel):
			m.canceled = true
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, keys.Enter):
			return m.submit()
		}
		m.err = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) submit() (tea.Model, tea.Cmd) {
	value := m.Value()
	if value == "" {
		m.canceled = true
		m.done = true
		return m, tea.Quit
	}

	if m.validate != nil {
		if msg := m.validate(value); msg != "" {
			m.err = msg
			m.input.Reset()
			m.more()
			return m, nil
		}
	}

	m.done = true
	return m, tea.Quit
}

func (m inputModel) View() string {
	if m.done {
		if m.canceled {
			return ""
		}
		return m.styles.hint.Render(m.prompt+": ") + m.Value() + "\n"
	}

	view := m.input.View() + "\n"
	if m.err != "" {
		view += m.styles.err.Render(m.err) + "\n"
	}
	return view + m.styles.hint.Render("enter submit • esc cancel") + "\n"
}
