package workbench

import (
	"github.com/chapar-rest/wordmark"
	"github.com/chapar-rest/wordmark/buffer"
	"github.com/chapar-rest/wordmark/textstyle/decoration"
)

var _ wordmark.Editor = (*Editor)(nil)

// Editor shows a document, owns a selection and keeps the decorations set on it.
type Editor struct {
	wb          *Workbench
	doc         *buffer.Document
	decorations *decoration.DecorationTree
	// selection in rune offsets, start <= end.
	selStart, selEnd int
	unsubscribe      func()
}

// Document implements [wordmark.Editor].
func (e *Editor) Document() wordmark.Document {
	return e.doc
}

// Buffer returns the edited document.
func (e *Editor) Buffer() *buffer.Document {
	return e.doc
}

// Selection implements [wordmark.Editor].
func (e *Editor) Selection() (start, end int) {
	return e.selStart, e.selEnd
}

// SetSelection selects the rune range [start, end) and notifies selection
// listeners. The range is clamped to the document.
func (e *Editor) SetSelection(start, end int) {
	if start > end {
		start, end = end, start
	}
	start = min(max(start, 0), e.doc.Len())
	end = min(max(end, 0), e.doc.Len())
	e.selStart, e.selEnd = start, end
	e.wb.selection.fire(e)
}

// SelectedText implements [wordmark.Editor].
func (e *Editor) SelectedText() string {
	return e.doc.Slice(e.selStart, e.selEnd)
}

// SetDecorations implements [wordmark.Editor]. Handles not created by the
// workbench registry are ignored.
func (e *Editor) SetDecorations(h wordmark.DecorationHandle, ranges []wordmark.Range) {
	typ, ok := h.(*decoration.Type)
	if !ok {
		logger.Warn("ignoring foreign decoration handle")
		return
	}

	spans := make([]wordmark.Span, 0, len(ranges))
	for _, r := range ranges {
		spans = append(spans, wordmark.Span{Start: e.doc.OffsetAt(r.Start), End: e.doc.OffsetAt(r.End)})
	}
	decoration.Set(e.decorations, typ, spans)
}

// Decorations returns the decorations currently set on the editor.
func (e *Editor) Decorations() *decoration.DecorationTree {
	return e.decorations
}

// onEdit keeps the selection inside the document after an edit.
func (e *Editor) onEdit(doc *buffer.Document) {
	e.selStart = min(e.selStart, doc.Len())
	e.selEnd = min(e.selEnd, doc.Len())
}
