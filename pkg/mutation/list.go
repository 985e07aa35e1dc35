package mutation

import "sync"

// List is a rendered list of entities addressable by id.
type List[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) string
}

func NewList[T any](items []T, id func(T) string) *List[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &List[T]{items: cp, id: id}
}

// Patch applies fn to the entity with the given id and reports whether it was
// found.
func (l *List[T]) Patch(id string, fn func(*T)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.id(l.items[i]) == id {
			fn(&l.items[i])
			return true
		}
	}
	return false
}

// Remove drops the entity with the given id and reports whether it was found.
func (l *List[T]) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.id(l.items[i]) == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *List[T]) Get(id string) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, item := range l.items {
		if l.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	cp := make([]T, len(l.items))
	copy(cp, l.items)
	return cp
}

func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// PatchIn returns a patch that applies fn to id in list. A nil list is skipped.
func PatchIn[T any](list *List[T], id string, fn func(*T)) Patch {
	return func() {
		if list != nil {
			list.Patch(id, fn)
		}
	}
}

// RemoveFrom returns a patch that drops id from list. A nil list is skipped.
func RemoveFrom[T any](list *List[T], id string) Patch {
	return func() {
		if list != nil {
			list.Remove(id)
		}
	}
}
