package wordmark

import (
	"strings"
)

// DefaultStyle is the style of highlight decorations. BackgroundColor is
// replaced by the color of each highlight.
var DefaultStyle = DecorationStyle{
	ForegroundColor: "#000000",
	BorderRadius:    "2px",
	FontWeight:      "bold",
}

// Applier turns the highlight list into host decorations. It remembers the
// handles it created so the next pass can dispose them first.
type Applier struct {
	decorator   Decorator
	base        DecorationStyle
	decorations map[Key]DecorationHandle
}

// ApplierOption configures an Applier.
type ApplierOption func(a *Applier)

// WithBaseStyle replaces DefaultStyle for the decorations of this applier.
func WithBaseStyle(s DecorationStyle) ApplierOption {
	return func(a *Applier) {
		a.base = s
	}
}

func NewApplier(d Decorator, opts ...ApplierOption) *Applier {
	a := &Applier{
		decorator:   d,
		base:        DefaultStyle,
		decorations: make(map[Key]DecorationHandle),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// styleFor returns the decoration style for a highlight color.
func (a *Applier) styleFor(color string) DecorationStyle {
	s := a.base
	s.BackgroundColor = color
	return s
}

// Reapply disposes every decoration of the previous pass and decorates all
// occurrences of each highlight in ed's document, in list order. Highlights
// without a match get no decoration.
func (a *Applier) Reapply(ed Editor, highlights []Highlight) {
	a.Dispose()
	if ed == nil {
		return
	}

	doc := ed.Document()
	text := doc.Text()

	for _, h := range highlights {
		if h.Word == "" {
			continue
		}

		spans, err := FindMatches(text, h)
		if err != nil {
			logger.Warn("skipping highlight", "word", h.Word, "error", err)
			continue
		}
		if len(spans) == 0 {
			continue
		}

		ranges := make([]Range, len(spans))
		for i, sp := range spans {
			ranges[i] = Range{Start: doc.PositionAt(sp.Start), End: doc.PositionAt(sp.End)}
		}

		key := h.Key()
		if old, ok := a.decorations[key]; ok {
			old.Dispose()
		}

		handle := a.decorator.CreateDecoration(a.styleFor(h.Color))
		a.decorations[key] = handle
		ed.SetDecorations(handle, ranges)
	}

	logger.Debug("highlights applied", "highlights", len(highlights), "decorations", len(a.decorations))
}

// DisposeKey tears down the decoration issued for key, if any.
func (a *Applier) DisposeKey(key Key) {
	if handle, ok := a.decorations[key]; ok {
		handle.Dispose()
		delete(a.decorations, key)
	}
}

// Dispose tears down every decoration created by the applier.
func (a *Applier) Dispose() {
	for key, handle := range a.decorations {
		handle.Dispose()
		delete(a.decorations, key)
	}
}

// Active returns the number of live decorations.
func (a *Applier) Active() int {
	return len(a.decorations)
}

// IsHighlighted reports whether the trimmed selection names one of the
// highlights. Highlights that ignore case are compared case folded.
func IsHighlighted(selection string, highlights []Highlight) bool {
	selection = strings.TrimSpace(selection)
	if selection == "" {
		return false
	}

	for _, h := range highlights {
		if h.Matches(selection) {
			return true
		}
	}
	return false
}
