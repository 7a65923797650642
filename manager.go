package wordmark

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
)

const (
	msgNoActiveEditor = "No active editor"
	msgNoTextSelected = "No text selected"
	msgRemovedAll     = "Removed all highlights"

	pickColorPlaceholder = `Select a highlight color or pick "Custom color (hex)"`
	customColorPrompt    = "Enter a hex color code (e.g. #ff0000)"
)

// ContextKeyIsHighlighted is published through the Workbench whenever the
// selection changes. It is true when the selection names a stored highlight.
const ContextKeyIsHighlighted = "wordmark.isHighlighted"

// Manager implements the user facing highlight commands on top of a Store and
// an Applier. Handle methods report failures to the user and never return them.
type Manager struct {
	store      *Store
	applier    *Applier
	ui         UI
	palette    []PaletteColor
	rnd        *rand.Rand
	setContext func(key string, value any)
	log        *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(m *Manager)

// WithPalette replaces the colors offered by the color picker.
func WithPalette(palette []PaletteColor) ManagerOption {
	return func(m *Manager) {
		if len(palette) > 0 {
			m.palette = palette
		}
	}
}

// WithRandom sets the source used to pick default colors.
func WithRandom(r *rand.Rand) ManagerOption {
	return func(m *Manager) {
		m.rnd = r
	}
}

// WithContextSetter sets the callback used to publish ContextKeyIsHighlighted.
func WithContextSetter(fn func(key string, value any)) ManagerOption {
	return func(m *Manager) {
		m.setContext = fn
	}
}

// WithLogger overrides the package logger for this manager.
func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = l
	}
}

func NewManager(store *Store, applier *Applier, ui UI, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:   store,
		applier: applier,
		ui:      ui,
		palette: DefaultPalette,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = logger
	}
	return m
}

// Init loads the stored highlights. On failure the error is logged and
// returned, and the manager carries on with an empty list.
func (m *Manager) Init() error {
	if err := m.store.Init(); err != nil {
		m.log.Error("failed to initialize highlight store", "error", err)
		return err
	}
	return nil
}

// Store returns the underlying store.
func (m *Manager) Store() *Store {
	return m.store
}

// HandleAddHighlight highlights the current selection of ed.
func (m *Manager) HandleAddHighlight(ctx context.Context, ed Editor, ignoreCase, customColor bool) {
	if err := m.addHighlight(ctx, ed, ignoreCase, customColor); err != nil {
		m.log.Error("add highlight failed", "error", err)
		m.ui.ShowError("Failed to add highlight. See log for details.")
	}
}

func (m *Manager) addHighlight(ctx context.Context, ed Editor, ignoreCase, customColor bool) error {
	word, ok := m.selectedWord(ed)
	if !ok {
		return nil
	}

	key := Key{Word: word, IgnoreCase: ignoreCase}
	if m.has(key) {
		m.ui.ShowInfo(fmt.Sprintf("%q is already highlighted (ignoreCase=%t)", word, ignoreCase))
		return nil
	}

	color := RandomColor(m.rnd)
	if customColor {
		picked, ok, err := m.pickColor(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		color = picked
	}

	if _, err := m.AddHighlight(ctx, ed, Highlight{Word: word, Color: color, IgnoreCase: ignoreCase}); err != nil {
		return err
	}

	suffix := ""
	if ignoreCase {
		suffix = " (ignore case)"
	}
	m.ui.ShowInfo(fmt.Sprintf("Highlighted %q%s with %s", word, suffix, color))
	return nil
}

// AddHighlight stores h and redraws ed, which may be nil. A highlight whose key
// is already stored is not added again and added is false.
func (m *Manager) AddHighlight(ctx context.Context, ed Editor, h Highlight) (added bool, err error) {
	if m.has(h.Key()) {
		return false, nil
	}
	if err := m.store.Add(ctx, h); err != nil {
		return false, err
	}

	if ed != nil {
		m.ApplyHighlights(ed)
	}
	m.log.Info("highlight added", "word", h.Word, "ignoreCase", h.IgnoreCase, "color", h.Color)
	return true, nil
}

func (m *Manager) has(key Key) bool {
	_, ok := m.store.Find(func(h Highlight) bool { return h.Key() == key })
	return ok
}

// pickColor asks the user for a color. ok is false when a prompt was dismissed.
func (m *Manager) pickColor(ctx context.Context) (string, bool, error) {
	items := make([]string, 0, len(m.palette)+1)
	for _, c := range m.palette {
		items = append(items, c.Label)
	}
	items = append(items, CustomColorLabel)

	picked, ok, err := m.ui.PickOne(ctx, pickColorPlaceholder, items)
	if err != nil || !ok || picked == "" {
		return "", false, err
	}

	if picked == CustomColorLabel {
		input, ok, err := m.ui.InputText(ctx, customColorPrompt, ValidateHexColor)
		if err != nil || !ok || input == "" {
			return "", false, err
		}
		return input, true, nil
	}

	for _, c := range m.palette {
		if c.Label == picked {
			return c.Color, true, nil
		}
	}
	// Unknown label: keep the default color like an untouched picker would.
	return RandomColor(m.rnd), true, nil
}

// HandleRemoveHighlight removes the first highlight whose word equals the
// current selection of ed.
func (m *Manager) HandleRemoveHighlight(ctx context.Context, ed Editor) {
	if err := m.removeHighlight(ctx, ed); err != nil {
		m.log.Error("remove highlight failed", "error", err)
		m.ui.ShowError("Failed to remove highlight. See log for details.")
	}
}

func (m *Manager) removeHighlight(ctx context.Context, ed Editor) error {
	word, ok := m.selectedWord(ed)
	if !ok {
		return nil
	}

	_, found, err := m.RemoveHighlight(ctx, ed, word)
	if err != nil {
		return err
	}
	if !found {
		m.ui.ShowInfo(fmt.Sprintf("No highlight found for %q", word))
		return nil
	}

	m.ui.ShowInfo(fmt.Sprintf("Removed highlight: %q", word))
	return nil
}

// RemoveHighlight removes the first highlight whose word equals word and
// redraws ed, which may be nil.
func (m *Manager) RemoveHighlight(ctx context.Context, ed Editor, word string) (Highlight, bool, error) {
	byWord := func(h Highlight) bool { return h.Word == word }
	h, found := m.store.Find(byWord)
	if !found {
		return Highlight{}, false, nil
	}

	if _, err := m.store.Remove(ctx, byWord); err != nil {
		return Highlight{}, false, err
	}

	m.applier.DisposeKey(h.Key())
	if ed != nil {
		m.ApplyHighlights(ed)
	}
	m.log.Info("highlight removed", "word", word, "ignoreCase", h.IgnoreCase)
	return h, true, nil
}

// HandleRemoveAllHighlights clears every highlight. ed may be nil.
func (m *Manager) HandleRemoveAllHighlights(ctx context.Context, ed Editor) {
	if err := m.removeAllHighlights(ctx, ed); err != nil {
		m.log.Error("remove all highlights failed", "error", err)
		m.ui.ShowError("Failed to remove all highlights. See log for details.")
	}
}

func (m *Manager) removeAllHighlights(ctx context.Context, ed Editor) error {
	if err := m.RemoveAll(ctx, ed); err != nil {
		return err
	}
	m.ui.ShowInfo(msgRemovedAll)
	return nil
}

// RemoveAll clears the store, then disposes every decoration and redraws ed,
// which may be nil. Decorations stay when the store cannot be cleared.
func (m *Manager) RemoveAll(ctx context.Context, ed Editor) error {
	if err := m.store.Clear(ctx); err != nil {
		return err
	}
	m.applier.Dispose()

	if ed != nil {
		m.ApplyHighlights(ed)
	}
	m.log.Info("all highlights removed")
	return nil
}

// ApplyHighlights redraws every stored highlight in ed.
func (m *Manager) ApplyHighlights(ed Editor) {
	m.applier.Reapply(ed, m.store.List())
}

// UpdateHighlightContext publishes whether the selection of ed is highlighted.
func (m *Manager) UpdateHighlightContext(ed Editor) {
	if m.setContext == nil {
		return
	}
	if ed == nil {
		m.setContext(ContextKeyIsHighlighted, false)
		return
	}
	m.setContext(ContextKeyIsHighlighted, IsHighlighted(ed.SelectedText(), m.store.List()))
}

// DisposeAll removes every decoration without touching the store.
func (m *Manager) DisposeAll() {
	m.applier.Dispose()
}

// selectedWord returns the trimmed selection of ed, telling the user why when
// there is nothing to work with.
func (m *Manager) selectedWord(ed Editor) (string, bool) {
	if ed == nil {
		m.ui.ShowInfo(msgNoActiveEditor)
		return "", false
	}

	word := strings.TrimSpace(ed.SelectedText())
	if word == "" {
		m.ui.ShowInfo(msgNoTextSelected)
		return "", false
	}
	return word, true
}
