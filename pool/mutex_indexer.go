// File: pool/mutex_indexer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutex-backed Indexer, the correctness baseline for the lock-free one.

package pool

import "sync"

// Ensure compile-time interface compliance.
var _ Indexer = (*MutexIndexer)(nil)

// MutexIndexer implements the Indexer contract with a contiguous index
// stack under a single lock.
type MutexIndexer struct {
	mu       sync.Mutex
	indices  []uint64
	indexPos int
}

// NewMutexIndexer creates an indexer arbitrating poolSize indices.
func NewMutexIndexer(poolSize uint64) *MutexIndexer {
	indices := make([]uint64, poolSize)
	for i := range indices {
		indices[i] = uint64(i)
	}
	return &MutexIndexer{indices: indices}
}

// Next acquires the next available index, or an empty holder when all
// indices are held.
func (mi *MutexIndexer) Next() IndexHolder {
	mi.mu.Lock()
	defer mi.mu.Unlock()

	if mi.indexPos == len(mi.indices) {
		return IndexHolder{}
	}

	index := mi.indices[mi.indexPos]
	mi.indexPos++

	return NewIndexHolder(index)
}

// Return releases an index back to the stack. The index is not validated;
// callers must only return indices previously acquired through Next.
func (mi *MutexIndexer) Return(index uint64) {
	mi.mu.Lock()
	defer mi.mu.Unlock()

	mi.indexPos--
	mi.indices[mi.indexPos] = index
}
