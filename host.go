package wordmark

import (
	"context"
)

// Position is a zero based line/column pair. Column is counted in runes.
type Position struct {
	Line   int
	Column int
}

// Range is a half open range of positions in a document.
type Range struct {
	Start Position
	End   Position
}

// Document gives read access to the text of an open document.
type Document interface {
	// Text returns the full text of the document.
	Text() string
	// PositionAt converts a rune offset to a Position.
	PositionAt(offset int) Position
}

// Editor is a view of a Document that owns a selection and renders decorations.
type Editor interface {
	Document() Document
	// Selection returns the selected rune range.
	Selection() (start, end int)
	SelectedText() string
	// SetDecorations replaces the ranges rendered with the decoration h.
	SetDecorations(h DecorationHandle, ranges []Range)
}

// DecorationStyle is the visual style of a decoration. Values are CSS like
// strings understood by the host.
type DecorationStyle struct {
	BackgroundColor string
	ForegroundColor string
	BorderRadius    string
	FontWeight      string
}

// DecorationHandle is an opaque decoration created by the host.
type DecorationHandle interface {
	// Dispose removes the decoration from every editor it was set on.
	Dispose()
}

// Decorator creates decorations.
type Decorator interface {
	CreateDecoration(style DecorationStyle) DecorationHandle
}

// Memento is a durable key/value store that survives sessions.
type Memento interface {
	// Get decodes the value stored under key into dst. found is false when the
	// key has never been written; dst is left untouched in that case.
	Get(key string, dst any) (found bool, err error)
	// Update stores value under key.
	Update(ctx context.Context, key string, value any) error
}

// UI is the set of user interaction primitives the commands need.
type UI interface {
	ShowInfo(msg string)
	ShowError(msg string)
	// PickOne shows a choice list. ok is false when the user dismissed it.
	PickOne(ctx context.Context, placeholder string, items []string) (picked string, ok bool, err error)
	// InputText asks for free text. validate returns an error message for
	// invalid input or "" to accept it. ok is false when the user dismissed it.
	InputText(ctx context.Context, prompt string, validate func(string) string) (text string, ok bool, err error)
}

// Disposable releases a registration made with the host.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a function to Disposable.
type DisposeFunc func()

func (f DisposeFunc) Dispose() {
	if f != nil {
		f()
	}
}

// CommandFunc is invoked by the host when a registered command runs.
type CommandFunc func(ctx context.Context)

// Workbench is the host surface used by Activate.
type Workbench interface {
	// ActiveEditor returns the focused editor, or nil.
	ActiveEditor() Editor
	RegisterCommand(id string, fn CommandFunc) Disposable
	// OnDidChangeDocument fires after the text of doc changed.
	OnDidChangeDocument(fn func(doc Document)) Disposable
	// OnDidChangeActiveEditor fires with the new active editor, which may be nil.
	OnDidChangeActiveEditor(fn func(ed Editor)) Disposable
	OnDidChangeSelection(fn func(ed Editor)) Disposable
	// SetContext publishes a context value used by the host for UI state.
	SetContext(key string, value any)
}
