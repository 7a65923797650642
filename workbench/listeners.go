package workbench

import (
	"slices"

	"github.com/chapar-rest/wordmark"
)

// listeners keeps callbacks in registration order.
type listeners[T any] struct {
	nextID int
	ids    []int
	fns    map[int]func(T)
}

func (l *listeners[T]) add(fn func(T)) wordmark.Disposable {
	if l.fns == nil {
		l.fns = make(map[int]func(T))
	}
	id := l.nextID
	l.nextID++
	l.ids = append(l.ids, id)
	l.fns[id] = fn

	return wordmark.DisposeFunc(func() {
		delete(l.fns, id)
		l.ids = slices.DeleteFunc(l.ids, func(i int) bool { return i == id })
	})
}

func (l *listeners[T]) fire(v T) {
	// Listeners may unregister while firing.
	for _, id := range slices.Clone(l.ids) {
		if fn, ok := l.fns[id]; ok {
			fn(v)
		}
	}
}

func (l *listeners[T]) len() int {
	return len(l.ids)
}
