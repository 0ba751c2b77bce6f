// File: pool/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package pool implements a fixed-size, thread-safe object pool with
// at-most-one-owner hand-out semantics.
//
// A Pool holds N pre-constructed items that are never moved after
// construction. Take lends one item out through an Item handle; releasing
// the handle resets the item and makes its slot available again. Which
// slot is handed to which caller is arbitrated by an Indexer: either the
// lock-free ConcurrentIndexer or the mutex-backed MutexIndexer reference
// implementation.
//
// Acquisition is non-blocking. An exhausted pool yields an empty handle,
// never an error.
package pool
