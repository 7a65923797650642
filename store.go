package wordmark

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Store owns the highlight list and writes every change through to a Memento.
//
// The store does not reject duplicate keys; callers check with Find before
// calling Add.
type Store struct {
	memento Memento

	mu         sync.Mutex
	highlights []Highlight
}

func NewStore(m Memento) *Store {
	return &Store{memento: m}
}

// Init loads the persisted list. It must run before the other methods; until
// then the store behaves as empty. When the list cannot be read the store
// starts empty and the error is returned.
func (s *Store) Init() error {
	var loaded []Highlight
	found, err := s.memento.Get(StorageKey, &loaded)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.highlights = []Highlight{}
		return fmt.Errorf("load highlights: %w", err)
	}
	if !found || loaded == nil {
		loaded = []Highlight{}
	}
	s.highlights = loaded
	logger.Debug("highlight store loaded", "count", len(loaded))
	return nil
}

// List returns a copy of the current list in insertion order.
func (s *Store) List() []Highlight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.highlights)
}

// Len returns the number of stored highlights.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.highlights)
}

// Find returns the first highlight satisfying pred.
func (s *Store) Find(pred func(Highlight) bool) (Highlight, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.highlights, pred)
	if idx < 0 {
		return Highlight{}, false
	}
	return s.highlights[idx], true
}

// Add appends h and persists the list. On a failed write the list is left as
// it was before the call.
func (s *Store) Add(ctx context.Context, h Highlight) error {
	if err := h.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.highlights
	s.highlights = append(slices.Clip(prev), h)
	if err := s.save(ctx); err != nil {
		s.highlights = prev
		return err
	}
	return nil
}

// Remove deletes the first highlight satisfying pred. It reports whether a
// record was removed and only writes to storage in that case.
func (s *Store) Remove(ctx context.Context, pred func(Highlight) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.highlights, pred)
	if idx < 0 {
		return false, nil
	}

	prev := s.highlights
	s.highlights = slices.Delete(slices.Clone(prev), idx, idx+1)
	if err := s.save(ctx); err != nil {
		s.highlights = prev
		return false, err
	}
	return true, nil
}

// Clear removes every highlight. An already empty store is not written.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.highlights) == 0 {
		return nil
	}

	prev := s.highlights
	s.highlights = []Highlight{}
	if err := s.save(ctx); err != nil {
		s.highlights = prev
		return err
	}
	return nil
}

// save writes the whole list. Callers hold s.mu.
func (s *Store) save(ctx context.Context) error {
	if err := s.memento.Update(ctx, StorageKey, s.highlights); err != nil {
		return fmt.Errorf("save highlights: %w", err)
	}
	return nil
}
