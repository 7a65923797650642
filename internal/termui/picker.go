package termui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Erase  key.Binding
	Cancel key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Erase:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "erase")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// pickerModel is a single choice list.
type pickerModel struct {
	title    string
	items    []string
	selected int

	// query holds the keys typed since the last move. It selects by item
	// number or by case insensitive label prefix.
	query string
	err   string

	done     bool
	canceled bool

	more   func()
	styles promptStyles
}

func newPickerModel(title string, items []string, styles promptStyles) pickerModel {
	return pickerModel{
		title:  title,
		items:  items,
		more:   func() {},
		styles: styles,
	}
}

func (m pickerModel) Init() tea.Cmd { return nil }

// Selected returns the item under the cursor.
func (m pickerModel) Selected() string {
	if m.selected >= 0 && m.selected < len(m.items) {
		return m.items[m.selected]
	}
	return ""
}

func (m pickerModel) Update(in tea.Msg) (tea.Model, tea.Cmd) {
	msg, ok := in.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Cancel):
		m.canceled = true
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, keys.Down):
		if m.selected < len(m.items)-1 {
			m.selected++
		}
		m.query = ""
	case key.Matches(msg, keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		m.query = ""
	case key.Matches(msg, keys.Erase):
		m.query = ""
	case key.Matches(msg, keys.Enter):
		if m.query != "" && m.match(m.query) < 0 {
			m.err = fmt.Sprintf("%q is not one of the choices", m.query)
			m.query = ""
			m.more()
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		if msg.Type == tea.KeySpace {
			m.query += " "
		} else {
			m.query += string(msg.Runes)
		}
		m.err = ""
		if i := m.match(m.query); i >= 0 {
			m.selected = i
		}
	}
	return m, nil
}

// match returns the index chosen by query, or -1.
func (m pickerModel) match(query string) int {
	if n, err := strconv.Atoi(query); err == nil {
		if n >= 1 && n <= len(m.items) {
			return n - 1
		}
		return -1
	}
	query = strings.ToLower(query)
	for i, item := range m.items {
		if strings.HasPrefix(strings.ToLower(item), query) {
			return i
		}
	}
	return -1
}

func (m pickerModel) View() string {
	if m.done {
		if m.canceled {
			return ""
		}
		return m.styles.hint.Render(m.title+": ") + m.Selected() + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.title))
	for i, item := range m.items {
		b.WriteString("\n")
		label := fmt.Sprintf("%2d) %s", i+1, item)
		if i == m.selected {
			b.WriteString(m.styles.indicator.Render(">") + m.styles.selected.Render(label))
		} else {
			b.WriteString(" " + label)
		}
	}

	view := m.styles.box.Render(b.String()) + "\n"
	if m.err != "" {
		view += m.styles.err.Render(m.err) + "\n"
	}
	if m.query != "" {
		view += m.styles.hint.Render("> "+m.query) + "\n"
	}
	return view + m.styles.hint.Render("↑/↓ move • enter select • esc cancel") + "\n"
}
