// File: pool/indexer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Indexer contract shared by the concurrent and mutex-backed allocators.

package pool

// Indexer arbitrates a fixed set of slot indices in [0, N) among
// concurrent callers. It defines the concurrency behaviour of a Pool.
//
// Neither operation has an error channel: the only failure mode of Next
// is emptiness, represented by an empty IndexHolder.
type Indexer interface {
	// Next acquires the next available index, or returns an empty holder
	// when none is available. It never blocks waiting on peers.
	Next() IndexHolder

	// Return releases an index previously acquired through Next. Indices
	// are not validated: returning an index that was never acquired, or
	// returning one twice, corrupts the indexer.
	Return(index uint64)
}
