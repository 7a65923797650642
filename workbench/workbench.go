// Package workbench is an in-process host for wordmark: it keeps a set of
// editors over buffer documents, dispatches commands and fires the change
// events the highlighter listens to.
package workbench

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/chapar-rest/wordmark"
	"github.com/chapar-rest/wordmark/buffer"
	"github.com/chapar-rest/wordmark/textstyle/decoration"
)

var _ wordmark.Workbench = (*Workbench)(nil)

// ErrUnknownCommand is returned by ExecuteCommand for unregistered ids.
var ErrUnknownCommand = errors.New("unknown command")

// Workbench implements [wordmark.Workbench]. It is not safe for concurrent
// use; hosts call it from their event loop.
type Workbench struct {
	registry *decoration.Registry
	editors  []*Editor
	active   *Editor
	commands map[string]wordmark.CommandFunc
	context  map[string]any

	docChanged    listeners[wordmark.Document]
	activeChanged listeners[wordmark.Editor]
	selection     listeners[wordmark.Editor]
}

func New() *Workbench {
	return &Workbench{
		registry: decoration.NewRegistry(),
		commands: make(map[string]wordmark.CommandFunc),
		context:  make(map[string]any),
	}
}

// Decorator returns the decoration factory shared by all editors.
func (w *Workbench) Decorator() wordmark.Decorator {
	return w.registry
}

// Open creates an editor for doc. The editor becomes active when no other
// editor is.
func (w *Workbench) Open(doc *buffer.Document) *Editor {
	ed := &Editor{
		wb:          w,
		doc:         doc,
		decorations: decoration.NewDecorationTree(),
	}
	w.registry.Track(ed.decorations)
	ed.unsubscribe = doc.OnChange(func(d *buffer.Document) {
		ed.onEdit(d)
		w.docChanged.fire(d)
	})
	w.editors = append(w.editors, ed)

	if w.active == nil {
		w.Focus(ed)
	}
	return ed
}

// Focus makes ed the active editor. Passing nil leaves no editor active.
func (w *Workbench) Focus(ed *Editor) {
	if ed == w.active {
		return
	}
	w.active = ed
	if ed == nil {
		w.activeChanged.fire(nil)
		return
	}
	w.activeChanged.fire(ed)
}

// Close removes ed from the workbench. When ed was active the previously
// opened editor, if any, becomes active.
func (w *Workbench) Close(ed *Editor) {
	idx := slices.Index(w.editors, ed)
	if idx < 0 {
		return
	}
	w.editors = slices.Delete(w.editors, idx, idx+1)
	ed.unsubscribe()
	w.registry.Untrack(ed.decorations)
	ed.decorations.RemoveAll()

	if w.active == ed {
		var next *Editor
		if len(w.editors) > 0 {
			next = w.editors[max(idx-1, 0)]
		}
		w.Focus(next)
	}
}

// Editors returns the open editors in opening order.
func (w *Workbench) Editors() []*Editor {
	return slices.Clone(w.editors)
}

// ActiveEditor implements [wordmark.Workbench].
func (w *Workbench) ActiveEditor() wordmark.Editor {
	if w.active == nil {
		return nil
	}
	return w.active
}

// Active returns the active editor, or nil.
func (w *Workbench) Active() *Editor {
	return w.active
}

// RegisterCommand implements [wordmark.Workbench]. Registering an id twice
// replaces the earlier command.
func (w *Workbench) RegisterCommand(id string, fn wordmark.CommandFunc) wordmark.Disposable {
	w.commands[id] = fn
	return wordmark.DisposeFunc(func() {
		delete(w.commands, id)
	})
}

// ExecuteCommand runs a registered command.
func (w *Workbench) ExecuteCommand(ctx context.Context, id string) error {
	fn, ok := w.commands[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	fn(ctx)
	return nil
}

// Commands returns the registered command ids, sorted.
func (w *Workbench) Commands() []string {
	ids := make([]string, 0, len(w.commands))
	for id := range w.commands {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// OnDidChangeDocument implements [wordmark.Workbench].
func (w *Workbench) OnDidChangeDocument(fn func(doc wordmark.Document)) wordmark.Disposable {
	return w.docChanged.add(fn)
}

// OnDidChangeActiveEditor implements [wordmark.Workbench].
func (w *Workbench) OnDidChangeActiveEditor(fn func(ed wordmark.Editor)) wordmark.Disposable {
	return w.activeChanged.add(fn)
}

// OnDidChangeSelection implements [wordmark.Workbench].
func (w *Workbench) OnDidChangeSelection(fn func(ed wordmark.Editor)) wordmark.Disposable {
	return w.selection.add(fn)
}

// SetContext implements [wordmark.Workbench].
func (w *Workbench) SetContext(key string, value any) {
	w.context[key] = value
}

// Context returns a value published with SetContext.
func (w *Workbench) Context(key string) (any, bool) {
	v, ok := w.context[key]
	return v, ok
}

// Listeners returns the number of registered event listeners.
func (w *Workbench) Listeners() int {
	return w.docChanged.len() + w.activeChanged.len() + w.selection.len()
}
