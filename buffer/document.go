package buffer

import (
	"strings"
	"unicode/utf8"

	"github.com/chapar-rest/wordmark"
)

var _ wordmark.Document = (*Document)(nil)

// Document is an editable text document addressed by rune offsets.
type Document struct {
	uri     string
	text    string
	runes   int
	version int
	lines   lineIndex

	nextListener int
	listeners    map[int]func(*Document)
}

// NewDocument creates a document with the initial text. uri identifies the
// document to the host, usually the file path.
func NewDocument(uri, text string) *Document {
	d := &Document{uri: uri}
	d.setText(text)
	return d
}

func (d *Document) URI() string {
	return d.uri
}

// Text implements [wordmark.Document].
func (d *Document) Text() string {
	return d.text
}

// Len returns the length of the document in runes.
func (d *Document) Len() int {
	return d.runes
}

// Version increases by one on every change.
func (d *Document) Version() int {
	return d.version
}

// LineCount returns the number of lines. An empty document has one line.
func (d *Document) LineCount() int {
	return d.lines.count()
}

// PositionAt implements [wordmark.Document]. The offset is clamped to the
// document.
func (d *Document) PositionAt(offset int) wordmark.Position {
	offset = d.clamp(offset)
	n := d.lines.lineOf(offset)
	line, _ := d.lines.line(n)
	return wordmark.Position{Line: n, Column: offset - line.start}
}

// OffsetAt converts a position back to a rune offset. Columns past the end of
// the line resolve to the end of the line, before its line break.
func (d *Document) OffsetAt(pos wordmark.Position) int {
	if pos.Line < 0 {
		return 0
	}
	line, ok := d.lines.line(pos.Line)
	if !ok {
		return d.runes
	}

	maxCol := line.length
	if line.hasLineBreak {
		maxCol--
	}
	col := min(max(pos.Column, 0), maxCol)
	return line.start + col
}

// Slice returns the text between two rune offsets.
func (d *Document) Slice(start, end int) string {
	start, end = d.clamp(start), d.clamp(end)
	if start >= end {
		return ""
	}
	bs, be := d.byteOffset(start), d.byteOffset(end)
	return d.text[bs:be]
}

// Index returns the rune offset of the first occurrence of substr, or -1.
func (d *Document) Index(substr string) int {
	i := strings.Index(d.text, substr)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(d.text[:i])
}

// Replace replaces the runes in [start, end) with s and notifies listeners.
func (d *Document) Replace(start, end int, s string) {
	start, end = d.clamp(start), d.clamp(end)
	if start > end {
		start, end = end, start
	}

	bs, be := d.byteOffset(start), d.byteOffset(end)
	d.setText(d.text[:bs] + s + d.text[be:])
	d.notify()
}

// Insert inserts s at the rune offset.
func (d *Document) Insert(offset int, s string) {
	d.Replace(offset, offset, s)
}

// SetText replaces the whole content of the document.
func (d *Document) SetText(s string) {
	d.setText(s)
	d.notify()
}

// OnChange registers fn to run after every change. The returned function
// removes the registration.
func (d *Document) OnChange(fn func(*Document)) (remove func()) {
	if d.listeners == nil {
		d.listeners = make(map[int]func(*Document))
	}
	id := d.nextListener
	d.nextListener++
	d.listeners[id] = fn
	return func() {
		delete(d.listeners, id)
	}
}

func (d *Document) setText(s string) {
	d.text = s
	d.runes = utf8.RuneCountInString(s)
	d.lines.rebuild(s)
	d.version++
}

func (d *Document) notify() {
	for i := 0; i < d.nextListener; i++ {
		if fn, ok := d.listeners[i]; ok {
			fn(d)
		}
	}
}

func (d *Document) clamp(offset int) int {
	return min(max(offset, 0), d.runes)
}

// byteOffset converts a valid rune offset to a byte offset into d.text.
func (d *Document) byteOffset(runeOff int) int {
	line, _ := d.lines.line(d.lines.lineOf(runeOff))
	b := line.byteStart
	for n := line.start; n < runeOff; n++ {
		_, size := utf8.DecodeRuneInString(d.text[b:])
		b += size
	}
	return b
}
