// Package resource holds the in-memory mirror of a remote collection.
//
// Contract: a successful form submission invalidates the list; list screens
// reload on mount via Load. Mutations never patch a list that a submission
// produced — the reload is the sole path by which new records appear.
package resource

import (
	"context"
	"sync"
)

// Identifiable is any record addressable by its server-assigned id.
type Identifiable interface {
	Key() string
}

// List mirrors one remote collection in server order. Loads are keyed by a
// generation counter: a response belonging to a superseded request is
// discarded instead of overwriting fresher items.
type List[T Identifiable] struct {
	mu      sync.Mutex
	items   []T
	loading bool
	gen     uint64
}

func NewList[T Identifiable]() *List[T] {
	return &List[T]{}
}

// Items returns a copy of the current sequence in server order.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	cp := make([]T, len(l.items))
	copy(cp, l.items)
	return cp
}

func (l *List[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Load fetches the collection and replaces items wholesale on success. On
// failure items keep their previous value. The loading flag clears when the
// newest in-flight load settles, whatever its outcome.
func (l *List[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.loading = true
	l.mu.Unlock()

	items, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen == l.gen {
		l.loading = false
	}
	if err != nil {
		return err
	}
	if gen != l.gen {
		// a newer load finished first; this response is stale
		return nil
	}
	l.items = append([]T(nil), items...)
	return nil
}

// Remove issues the delete call and splices the entry out of the local
// sequence only once the remote confirms. An id that is not present
// locally leaves the list untouched.
func (l *List[T]) Remove(ctx context.Context, id string, del func(context.Context, string) error) error {
	if err := del(ctx, id); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for i, it := range l.items {
		if it.Key() == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	return nil
}

// Len avoids copying when only the count matters.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}
