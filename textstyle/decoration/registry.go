package decoration

import (
	"sync"

	"github.com/chapar-rest/wordmark"
)

var _ wordmark.Decorator = (*Registry)(nil)

// Registry creates decoration types and removes them from every tree they
// were placed in once disposed.
type Registry struct {
	mu     sync.Mutex
	nextID int
	trees  []*DecorationTree
	// fallback is used when a style cannot be resolved.
	fallback *Style
}

func NewRegistry() *Registry {
	return &Registry{fallback: &Style{}}
}

// Type is a decoration handle. Its id doubles as the paint priority, so types
// created later paint over earlier ones.
type Type struct {
	id       int
	style    *Style
	registry *Registry
	disposed bool
}

// CreateDecoration implements [wordmark.Decorator]. Invalid style values are
// logged and rendered with an empty style.
func (r *Registry) CreateDecoration(s wordmark.DecorationStyle) wordmark.DecorationHandle {
	style, err := NewStyle(s)
	if err != nil {
		logger.Warn("invalid decoration style", "error", err)
		style = r.fallback
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	return &Type{id: r.nextID, style: style, registry: r}
}

// Track registers a tree so that disposed types are removed from it.
func (r *Registry) Track(tree *DecorationTree) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trees = append(r.trees, tree)
}

// Untrack stops tracking tree.
func (r *Registry) Untrack(tree *DecorationTree) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.trees {
		if t == tree {
			r.trees = append(r.trees[:i], r.trees[i+1:]...)
			return
		}
	}
}

func (r *Registry) remove(t *Type) {
	r.mu.Lock()
	trees := append([]*DecorationTree(nil), r.trees...)
	r.mu.Unlock()

	for _, tree := range trees {
		tree.RemoveBySource(t)
	}
}

// Style returns the resolved style of the type.
func (t *Type) Style() *Style {
	return t.style
}

// Disposed reports whether Dispose has been called.
func (t *Type) Disposed() bool {
	return t.disposed
}

// Dispose implements [wordmark.DecorationHandle].
func (t *Type) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.registry.remove(t)
}

// Set replaces the decorations of type t in tree with spans, given as rune
// offsets. Setting a disposed type only clears it.
func Set(tree *DecorationTree, t *Type, spans []wordmark.Span) {
	tree.RemoveBySource(t)
	if t.disposed {
		return
	}

	decos := make([]Decoration, 0, len(spans))
	for _, sp := range spans {
		decos = append(decos, Decoration{
			Source:   t,
			Priority: t.id,
			Start:    sp.Start,
			End:      sp.End,
			Style:    t.style,
		})
	}
	tree.Insert(decos...)
}
