package listquery

import (
	"context"
	"sync"
)

type FetchFunc[T any] func(ctx context.Context, q Query) ([]T, error)

// View holds the rendered state of one list. Every refetch is tagged with a
// sequence number and its query; a response is committed only while it is
// still the latest request, so an older response can never overwrite a newer
// one.
type View[T any] struct {
	mu      sync.Mutex
	seq     uint64
	query   Query
	items   []T
	loading bool
	err     error
}

type Snapshot[T any] struct {
	Query   Query
	Items   []T
	Loading bool
	// Err is the last fetch failure; Items is empty when it is set.
	Err error
}

func NewView[T any]() *View[T] {
	return &View[T]{}
}

// Begin marks a fetch for q as in flight and returns its token.
func (v *View[T]) Begin(q Query) uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	v.query = q
	v.loading = true
	return v.seq
}

// Commit stores the result of the fetch identified by token. It returns false
// and discards the result when a newer fetch has begun since. A failed fetch
// commits an empty list.
func (v *View[T]) Commit(token uint64, q Query, items []T, err error) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if token != v.seq || !q.Equal(v.query) {
		return false
	}
	v.loading = false
	v.err = err
	if err != nil {
		v.items = []T{}
		return true
	}
	if items == nil {
		items = []T{}
	}
	v.items = items
	return true
}

// Refetch runs fetch for q and commits the result. It never returns an error;
// failures show up as an empty list in the snapshot.
func (v *View[T]) Refetch(ctx context.Context, q Query, fetch FetchFunc[T]) Snapshot[T] {
	token := v.Begin(q)
	items, err := fetch(ctx, q)
	v.Commit(token, q, items, err)
	return v.Snapshot()
}

func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	items := make([]T, len(v.items))
	copy(items, v.items)
	return Snapshot[T]{Query: v.query, Items: items, Loading: v.loading, Err: v.err}
}
