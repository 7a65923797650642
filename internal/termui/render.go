// Package termui renders workbench editors to a terminal and implements the
// wordmark prompts as bubbletea programs.
package termui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/chapar-rest/wordmark/internal/painter"
	"github.com/chapar-rest/wordmark/textstyle/decoration"
	"github.com/chapar-rest/wordmark/workbench"
)

// segment is a run of text painted with a single decoration style.
type segment struct {
	text  string
	style *decoration.Style
}

// Renderer paints editor text with its decorations using terminal colors.
type Renderer struct {
	r *lipgloss.Renderer
}

// NewRenderer creates a renderer detecting the color support of w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{r: lipgloss.NewRenderer(w)}
}

// ForceTrueColor renders 24 bit colors regardless of the detected terminal.
func (rd *Renderer) ForceTrueColor() {
	rd.r.SetColorProfile(termenv.TrueColor)
}

// Render returns the text of ed with every decoration painted. Where
// decorations overlap, the one with the highest priority wins.
func (rd *Renderer) Render(ed *workbench.Editor) string {
	var b strings.Builder
	for _, seg := range segments(ed) {
		if seg.style == nil {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString(rd.style(seg.style).Render(seg.text))
	}
	return b.String()
}

func (rd *Renderer) style(s *decoration.Style) lipgloss.Style {
	st := rd.r.NewStyle()
	if s.Background.IsSet() {
		st = st.Background(lipgloss.Color(s.Background.Hex()))
	}
	if s.Foreground.IsSet() {
		st = st.Foreground(lipgloss.Color(s.Foreground.Hex()))
	}
	if s.Bold() {
		st = st.Bold(true)
	}
	return st
}

// segments flattens the painter lines. Line breaks are never styled.
func segments(ed *workbench.Editor) []segment {
	var segs []segment
	for i, line := range painter.Lines(ed) {
		if i > 0 {
			segs = append(segs, segment{text: "\n"})
		}
		for _, run := range line {
			segs = append(segs, segment{text: run.Text, style: run.Style})
		}
	}
	return segs
}

// Swatch returns a short block painted with the hex color.
func (rd *Renderer) Swatch(hex string) string {
	return rd.r.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
