// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-size object pool. Items are constructed once, never move, and are
// destroyed only with the pool itself.

package pool

// Resetable is implemented by item types carrying their own in-place
// reset. When *T implements it, the pool calls Reset instead of any
// custom reset callback before a slot is returned.
type Resetable interface {
	Reset()
}

// Pool is a fixed-size, thread-safe object pool.
//
// The pool starts with a fixed number of items and cannot be resized.
// Items never have their memory position changed, so consumers always
// work with references while the pool owns item lifetime. For the full
// benefit of cache locality, avoid sharing pools between threads on
// different cores.
//
// A Pool must not be copied after creation.
type Pool[T any] struct {
	items   []T
	indexer Indexer
	reset   func(*T)
}

// Option configures pool construction.
type Option[T any] func(*poolConfig[T])

type poolConfig[T any] struct {
	reset      func(*T)
	newIndexer func(size uint64) Indexer
}

// WithReset sets a custom reset callback, invoked on an item immediately
// before its slot is returned to the pool. It is ignored for item types
// implementing Resetable. The default reset is a no-op.
func WithReset[T any](reset func(*T)) Option[T] {
	return func(cfg *poolConfig[T]) {
		cfg.reset = reset
	}
}

// WithIndexer selects the Indexer implementation arbitrating the pool's
// slots. The default is NewConcurrentIndexer; NewMutexIndexer is the
// mutex-backed reference.
func WithIndexer[T any](newIndexer func(size uint64) Indexer) Option[T] {
	return func(cfg *poolConfig[T]) {
		cfg.newIndexer = newIndexer
	}
}

// New creates a pool of size zero-valued items of type T.
func New[T any](size uint64, opts ...Option[T]) *Pool[T] {
	cfg := poolConfig[T]{
		newIndexer: func(size uint64) Indexer { return NewConcurrentIndexer(size) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Pool[T]{
		items:   make([]T, size),
		indexer: cfg.newIndexer(size),
		reset:   cfg.reset,
	}
}

// Take removes and returns an item from the pool. The returned handle is
// empty when the pool has no free slots; acquisition never blocks.
//
// Releasing the handle resets the item first and only then publishes the
// slot index back to the indexer, so no caller can observe a slot whose
// item is still in a used state.
func (p *Pool[T]) Take() *Item[T] {
	holder := p.indexer.Next()
	if holder.Empty() {
		return &Item[T]{}
	}

	index := holder.Get()
	item := &p.items[index]

	return newItem(item, index, func() {
		p.resetItem(item)
		p.indexer.Return(index)
	})
}

// Size returns the total number of slots in the pool.
func (p *Pool[T]) Size() uint64 {
	return uint64(len(p.items))
}

func (p *Pool[T]) resetItem(item *T) {
	if resetable, ok := any(item).(Resetable); ok {
		resetable.Reset()
		return
	}
	if p.reset != nil {
		p.reset(item)
	}
}
