package termui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/chapar-rest/wordmark"
)

var _ wordmark.UI = (*Prompt)(nil)

// Prompt implements wordmark.UI with bubbletea programs. On a terminal the
// keys drive the widgets directly. Any other input is consumed one line per
// answer: a non-empty line is typed and submitted, an empty line or the end
// of input dismisses the prompt.
type Prompt struct {
	in    io.Reader
	lines *bufio.Reader
	out   io.Writer

	styles promptStyles
}

type promptStyles struct {
	info      lipgloss.Style
	err       lipgloss.Style
	hint      lipgloss.Style
	title     lipgloss.Style
	indicator lipgloss.Style
	selected  lipgloss.Style
	box       lipgloss.Style
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	r := lipgloss.NewRenderer(out)
	p := &Prompt{
		in:  in,
		out: out,
		styles: promptStyles{
			info:      r.NewStyle().Foreground(lipgloss.Color("#5f87ff")),
			err:       r.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true),
			hint:      r.NewStyle().Faint(true),
			title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5f87ff")).PaddingLeft(1),
			indicator: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")),
			selected:  r.NewStyle().Bold(true),
			box:       r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#5f87ff")),
		},
	}
	if !isTerminal(in) {
		p.lines = bufio.NewReader(in)
	}
	return p
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// ShowInfo implements [wordmark.UI].
func (p *Prompt) ShowInfo(msg string) {
	fmt.Fprintln(p.out, p.styles.info.Render(msg))
}

// ShowError implements [wordmark.UI].
func (p *Prompt) ShowError(msg string) {
	fmt.Fprintln(p.out, p.styles.err.Render(msg))
}

// PickOne implements [wordmark.UI]. Esc dismisses the list. Typing a number
// or the start of a label moves the cursor to that item.
func (p *Prompt) PickOne(ctx context.Context, placeholder string, items []string) (string, bool, error) {
	if len(items) == 0 {
		return "", false, nil
	}

	m := newPickerModel(placeholder, items, p.styles)
	final, err := p.run(ctx, func(more func()) tea.Model {
		m.more = more
		return m
	})
	if err != nil {
		return "", false, err
	}

	res := final.(pickerModel)
	if res.canceled {
		return "", false, nil
	}
	return res.Selected(), true, nil
}

// InputText implements [wordmark.UI]. A rejected answer is reported under
// the input and the question stays open.
func (p *Prompt) InputText(ctx context.Context, prompt string, validate func(string) string) (string, bool, error) {
	m := newInputModel(prompt, validate, p.styles)
	final, err := p.run(ctx, func(more func()) tea.Model {
		m.more = more
		return m
	})
	if err != nil {
		return "", false, err
	}

	res := final.(inputModel)
	if res.canceled {
		return "", false, nil
	}
	return res.Value(), true, nil
}

// run starts a program for the model built by newModel. more asks the input
// side for another answer after a rejected one.
func (p *Prompt) run(ctx context.Context, newModel func(more func()) tea.Model) (tea.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in := p.in
	more := func() {}
	if p.lines != nil {
		feed := newLineFeed(p.lines)
		defer feed.close()
		in = feed
		more = feed.next
	}

	prog := tea.NewProgram(newModel(more),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(p.out),
	)
	final, err := prog.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}
