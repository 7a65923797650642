// Package painter lays out decorated editor text with the Gio text shaper
// and draws it as an SVG preview.
package painter

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"unicode/utf8"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/unit"
	"golang.org/x/image/math/fixed"

	"github.com/chapar-rest/wordmark/textstyle"
	"github.com/chapar-rest/wordmark/workbench"
)

const monoTypeface = "Go Mono"

// Painter draws editor text on a grid of monospace cells. Cell metrics come
// from shaping with the bundled Go fonts, so the output does not depend on
// the fonts installed on the host.
type Painter struct {
	shaper   *text.Shaper
	params   text.Parameters
	metric   unit.Metric
	textSize unit.Sp
	padding  unit.Dp

	foreground textstyle.Color
	background textstyle.Color
}

type Option func(*Painter)

// WithTextSize sets the font size. The default is 14sp.
func WithTextSize(size unit.Sp) Option {
	return func(p *Painter) { p.textSize = size }
}

// WithScale sets the pixels per dp and sp.
func WithScale(scale float32) Option {
	return func(p *Painter) { p.metric = unit.Metric{PxPerDp: scale, PxPerSp: scale} }
}

// WithColors sets the default text and page colors.
func WithColors(foreground, background textstyle.Color) Option {
	return func(p *Painter) {
		p.foreground = foreground
		p.background = background
	}
}

func New(opts ...Option) *Painter {
	p := &Painter{
		shaper:     text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection())),
		metric:     unit.Metric{PxPerDp: 1, PxPerSp: 1},
		textSize:   14,
		padding:    8,
		foreground: textstyle.MustParseColor("#000000"),
		background: textstyle.MustParseColor("#ffffff"),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.params = text.Parameters{
		Font:     font.Font{Typeface: monoTypeface},
		PxPerEm:  fixed.I(p.metric.Sp(p.textSize)),
		MaxLines: 1,
		MaxWidth: 1 << 20,
	}
	return p
}

// cellMetrics measures one monospace column.
func (p *Painter) cellMetrics() (advance, ascent, descent fixed.Int26_6) {
	p.shaper.LayoutString(p.params, " ")
	g, _ := p.shaper.NextGlyph()
	return g.Advance, g.Ascent, g.Descent
}

// WriteSVG draws the text of ed with every decoration. Decorated runs get a
// rounded background of the decoration's radius and its text weight.
func (p *Painter) WriteSVG(w io.Writer, ed *workbench.Editor) error {
	lines := Lines(ed)
	advance, ascent, descent := p.cellMetrics()
	lineHeight := (ascent + descent).Ceil()
	pad := p.metric.Dp(p.padding)
	px := func(cols int) int { return (advance * fixed.Int26_6(cols)).Round() }

	cols := 0
	for _, line := range lines {
		if n := len(line); n > 0 {
			last := line[n-1]
			cols = max(cols, last.Col+utf8.RuneCountInString(last.Text))
		}
	}
	width := 2*pad + px(cols)
	height := 2*pad + lineHeight*len(lines)

	// Fills share one class per distinct color.
	var palette textstyle.ColorPalette
	fg := palette.AddColor(p.foreground)
	bg := palette.AddColor(p.background)

	// The style sheet needs every color, so the shapes are drawn first.
	var body bytes.Buffer
	for i, line := range lines {
		top := pad + i*lineHeight
		baseline := top + ascent.Round()
		for _, run := range line {
			x := pad + px(run.Col)
			runWidth := px(utf8.RuneCountInString(run.Text))
			fill := fg
			weight := font.Normal

			if s := run.Style; s != nil {
				if s.Background.IsSet() {
					fmt.Fprintf(&body, `<rect x="%d" y="%d" width="%d" height="%d" rx="%d" class="c%d"/>`+"\n",
						x, top, runWidth, lineHeight, p.metric.Dp(s.BorderRadius), palette.AddColor(s.Background))
				}
				if s.Foreground.IsSet() {
					fill = palette.AddColor(s.Foreground)
				}
				weight = s.Weight
			}

			fmt.Fprintf(&body, `<text x="%d" y="%d" textLength="%d" class="c%d"`, x, baseline, runWidth, fill)
			if weight != font.Normal {
				fmt.Fprintf(&body, ` font-weight="%d"`, 400+int(weight))
			}
			body.WriteString(">")
			if err := xml.EscapeText(&body, []byte(run.Text)); err != nil {
				return err
			}
			body.WriteString("</text>\n")
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" xml:space="preserve" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	bw.WriteString("<style>\n")
	fmt.Fprintf(bw, "text{font-family:%q,monospace;font-size:%dpx}\n", monoTypeface, p.metric.Sp(p.textSize))
	for id := 0; id < palette.Len(); id++ {
		c := palette.GetColor(id)
		fmt.Fprintf(bw, ".c%d{fill:%s}\n", id, c.Hex())
	}
	bw.WriteString("</style>\n")
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" class="c%d"/>`+"\n", bg)
	if _, err := body.WriteTo(bw); err != nil {
		return err
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}
