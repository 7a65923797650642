package wordmark

import (
	"errors"
	"strings"
)

// StorageKey is the Memento key the highlight list is persisted under.
const StorageKey = "storedHighlights"

var errEmptyWord = errors.New("highlight word is empty")

// Highlight is one user requested highlight rule.
type Highlight struct {
	Word       string `json:"word"`
	Color      string `json:"color"`
	IgnoreCase bool   `json:"ignoreCase"`
}

// Key identifies a highlight for lookup, duplicate detection and decoration
// bookkeeping. Two highlights may share a word when IgnoreCase differs.
type Key struct {
	Word       string
	IgnoreCase bool
}

func (h Highlight) Key() Key {
	return Key{Word: h.Word, IgnoreCase: h.IgnoreCase}
}

// String renders the key the way log lines and decoration sources refer to it.
func (k Key) String() string {
	if k.IgnoreCase {
		return k.Word + "_i"
	}
	return k.Word
}

// Matches reports whether selection names this highlight, honoring IgnoreCase.
func (h Highlight) Matches(selection string) bool {
	if h.IgnoreCase {
		return strings.EqualFold(h.Word, selection)
	}
	return h.Word == selection
}

func (h Highlight) validate() error {
	if strings.TrimSpace(h.Word) == "" {
		return errEmptyWord
	}
	return nil
}
