package wordmark

import (
	"context"
	"errors"
)

// ErrNoWorkbench is returned by Activate without a workbench.
var ErrNoWorkbench = errors.New("wordmark: no workbench")

// Command ids registered by Activate.
const (
	CommandHighlightSelection       = "wordmark.highlightSelection"
	CommandAddHighlightIgnoreCase   = "wordmark.addHighlightIgnoreCase"
	CommandHighlightWithCustomColor = "wordmark.highlightWithCustomColor"
	CommandRemoveHighlight          = "wordmark.removeHighlight"
	CommandRemoveAllHighlights      = "wordmark.removeAllHighlights"
)

// Extension is an activated Manager bound to a Workbench.
type Extension struct {
	wb            Workbench
	manager       *Manager
	subscriptions []Disposable
}

// Activate loads the stored highlights, draws them in the active editor and
// registers the commands and listeners with wb. Unreadable stored highlights
// are logged and the extension starts with an empty list.
func Activate(wb Workbench, m *Manager) (*Extension, error) {
	if wb == nil {
		return nil, ErrNoWorkbench
	}
	// Init logs its own failure.
	_ = m.Init()

	ext := &Extension{wb: wb, manager: m}
	if m.setContext == nil {
		m.setContext = wb.SetContext
	}

	if ed := wb.ActiveEditor(); ed != nil {
		m.ApplyHighlights(ed)
		m.UpdateHighlightContext(ed)
	}

	ext.registerCommands()
	ext.registerEvents()
	logger.Info("extension activated", "highlights", m.store.Len())
	return ext, nil
}

func (e *Extension) registerCommands() {
	m := e.manager
	e.register(CommandHighlightSelection, func(ctx context.Context) {
		m.HandleAddHighlight(ctx, e.wb.ActiveEditor(), false, false)
	})
	e.register(CommandAddHighlightIgnoreCase, func(ctx context.Context) {
		m.HandleAddHighlight(ctx, e.wb.ActiveEditor(), true, false)
	})
	e.register(CommandHighlightWithCustomColor, func(ctx context.Context) {
		m.HandleAddHighlight(ctx, e.wb.ActiveEditor(), false, true)
	})
	e.register(CommandRemoveHighlight, func(ctx context.Context) {
		m.HandleRemoveHighlight(ctx, e.wb.ActiveEditor())
	})
	e.register(CommandRemoveAllHighlights, func(ctx context.Context) {
		m.HandleRemoveAllHighlights(ctx, e.wb.ActiveEditor())
	})
}

func (e *Extension) register(id string, fn CommandFunc) {
	e.subscriptions = append(e.subscriptions, e.wb.RegisterCommand(id, fn))
}

func (e *Extension) registerEvents() {
	m := e.manager
	e.subscriptions = append(e.subscriptions,
		e.wb.OnDidChangeDocument(func(doc Document) {
			active := e.wb.ActiveEditor()
			if active != nil && active.Document() == doc {
				m.ApplyHighlights(active)
			}
		}),
		e.wb.OnDidChangeActiveEditor(func(ed Editor) {
			if ed != nil {
				m.ApplyHighlights(ed)
				m.UpdateHighlightContext(ed)
			}
		}),
		e.wb.OnDidChangeSelection(func(ed Editor) {
			m.UpdateHighlightContext(ed)
		}),
		DisposeFunc(m.DisposeAll),
	)
}

// Manager returns the manager driven by the extension.
func (e *Extension) Manager() *Manager {
	return e.manager
}

// Deactivate unregisters everything Activate registered and removes all
// decorations. Stored highlights are kept for the next session.
func (e *Extension) Deactivate() {
	for i := len(e.subscriptions) - 1; i >= 0; i-- {
		e.subscriptions[i].Dispose()
	}
	e.subscriptions = nil
	logger.Info("extension deactivated")
}
