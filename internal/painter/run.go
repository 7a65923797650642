package painter

import (
	"github.com/chapar-rest/wordmark/textstyle/decoration"
	"github.com/chapar-rest/wordmark/workbench"
)

// Run is a piece of a line painted with a single decoration style. Style is
// nil for undecorated text.
type Run struct {
	Text string
	// Col is the rune column the run starts at.
	Col   int
	Style *decoration.Style
}

// Lines splits the editor text into lines of runs sharing the same top
// decoration. Decorations come sorted by priority, so where they overlap the
// later one owns the text. Line breaks are not part of any run.
func Lines(ed *workbench.Editor) [][]Run {
	runes := []rune(ed.Buffer().Text())

	owner := make([]*decoration.Style, len(runes))
	for _, deco := range ed.Decorations().All() {
		for i := max(deco.Start, 0); i < min(deco.End, len(runes)); i++ {
			owner[i] = deco.Style
		}
	}

	var (
		lines            [][]Run
		line             []Run
		lineStart, start int
	)
	flush := func(end int) {
		if end > start {
			line = append(line, Run{Text: string(runes[start:end]), Col: start - lineStart, Style: owner[start]})
		}
		start = end
	}

	for i, r := range runes {
		if r == '\n' {
			flush(i)
			lines = append(lines, line)
			line = nil
			start, lineStart = i+1, i+1
			continue
		}
		if i > start && owner[i] != owner[start] {
			flush(i)
		}
	}
	flush(len(runes))
	return append(lines, line)
}
