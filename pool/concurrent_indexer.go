// File: pool/concurrent_indexer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free index allocator over a ring of 2N cells with atomic cursors.
// Cursors are padded onto separate cache lines to avoid false sharing.

package pool

import (
	"math"
	"runtime"
	"sync/atomic"
)

// unusedPosition marks an empty ring cell. Stored index values are shifted
// by +1 so that 0 stays reserved for this sentinel.
const unusedPosition uint64 = 0

// Ensure compile-time interface compliance.
var _ Indexer = (*ConcurrentIndexer)(nil)

// ConcurrentIndexer is a lock-free Indexer. Next and Return never take a
// lock and never wait on peers; they may briefly spin-yield on the two
// publish races documented below.
type ConcurrentIndexer struct {
	readPos  atomic.Uint64
	_        [64]byte // padding for hot/cold separation
	writePos atomic.Uint64
	_        [64]byte

	indices []atomic.Uint64

	// size is the ring length, twice the number of indices. The head-room
	// lets Return always find a writable cell without waiting on readers.
	size uint64

	// maxPositionSize is the largest multiple of size a cursor may reach
	// before wrapping back to zero.
	maxPositionSize uint64
}

// NewConcurrentIndexer creates an indexer arbitrating poolSize indices.
// The ring uses 2*poolSize cells.
func NewConcurrentIndexer(poolSize uint64) *ConcurrentIndexer {
	ci := &ConcurrentIndexer{size: poolSize * 2}

	if ci.size == 0 {
		return ci
	}

	ci.maxPositionSize = (math.MaxUint64 / ci.size) * ci.size
	ci.indices = make([]atomic.Uint64, ci.size)

	// The whole ring is allocated up front; only the first half starts
	// populated. Cell order never matters so long as every index appears
	// exactly once across {ring} ∪ {held by callers}.
	for i := uint64(0); i < poolSize; i++ {
		ci.indices[i].Store(i + 1)
	}
	ci.writePos.Store(poolSize)

	return ci
}

// wrapOnOverflow wraps a cursor sitting at the wrap limit back to zero.
// Only one contender succeeds; the rest observe the wrapped value.
func wrapOnOverflow(position *atomic.Uint64, limit uint64) {
	for cur := position.Load(); cur == limit; cur = position.Load() {
		if position.CompareAndSwap(cur, 0) {
			return
		}
	}
}

// Next acquires the next available index, or an empty holder when all
// indices are held. Under heavy contention with far more threads than
// indices, Next may transiently report empty while a Return is mid-publish.
func (ci *ConcurrentIndexer) Next() IndexHolder {
	if ci.size == 0 {
		return IndexHolder{}
	}

	for {
		curReadPos := ci.readPos.Load()

		if curReadPos == ci.maxPositionSize {
			wrapOnOverflow(&ci.readPos, ci.maxPositionSize)
			continue
		}

		curWritePos := ci.writePos.Load()

		// nothing left to read: everything handed out, nothing returned
		if curReadPos == curWritePos {
			return IndexHolder{}
		}

		// Several threads can hold the same cell for different cursor
		// values once positions wrap; the sentinel check below and the
		// spin after the CAS correct for that.
		curReadIndex := curReadPos % ci.size

		// A Return may have advanced writePos without having stored the
		// value yet.
		if ci.indices[curReadIndex].Load() == unusedPosition {
			return IndexHolder{}
		}

		if !ci.readPos.CompareAndSwap(curReadPos, curReadPos+1) {
			continue
		}

		index := ci.indices[curReadIndex].Load()

		// The claim can land on a wrapped cell whose writer has not
		// finished publishing. Busy wait; this only happens when the
		// indexer is much smaller than the number of calling threads.
		for index == unusedPosition {
			runtime.Gosched()
			index = ci.indices[curReadIndex].Load()
		}

		ci.indices[curReadIndex].Store(unusedPosition)

		// undo the +1 shift applied when the index was stored
		return NewIndexHolder(index - 1)
	}
}

// Return releases an index back to the ring. The index is not validated;
// callers must only return indices previously acquired through Next.
// Return must never fail, so the claimed write position is always honoured.
func (ci *ConcurrentIndexer) Return(index uint64) {
	if ci.size == 0 {
		return
	}

	for {
		curWritePos := ci.writePos.Load()

		if curWritePos == ci.maxPositionSize {
			wrapOnOverflow(&ci.writePos, ci.maxPositionSize)
			continue
		}

		if !ci.writePos.CompareAndSwap(curWritePos, curWritePos+1) {
			continue
		}

		curWriteIndex := curWritePos % ci.size

		// wait until the previous occupant of this cell has been consumed
		for ci.indices[curWriteIndex].Load() != unusedPosition {
			runtime.Gosched()
		}

		ci.indices[curWriteIndex].Store(index + 1)
		return
	}
}
