// File: worker/builder.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Builder for WorkerPool configuration and validation.

package worker

import (
	"errors"
	"fmt"

	"github.com/bignacio/dxpool/affinity"
)

// ErrInvalidWorkerPoolConfig is returned by Build when the accumulated
// configuration is missing or contradictory.
var ErrInvalidWorkerPoolConfig = errors.New("worker: invalid worker pool configuration")

// WorkerPoolBuilder accumulates the configuration of a WorkerPool: the
// number of threads per core and the target cores, given either as an
// explicit core set or as a NUMA node. Exactly one of the two targets
// must be set.
type WorkerPoolBuilder struct {
	cores          affinity.CoreSet
	numaNode       affinity.NUMANode
	threadsPerCore uint
}

// NewWorkerPoolBuilder creates an empty builder.
func NewWorkerPoolBuilder() *WorkerPoolBuilder {
	return &WorkerPoolBuilder{}
}

// WithThreadsPerCore sets how many worker threads are created for each
// target core.
func (b *WorkerPoolBuilder) WithThreadsPerCore(threadsPerCore uint) *WorkerPoolBuilder {
	b.threadsPerCore = threadsPerCore
	return b
}

// OnCores targets the pool at an explicit set of cores.
func (b *WorkerPoolBuilder) OnCores(cores affinity.CoreSet) *WorkerPoolBuilder {
	b.cores = cores
	return b
}

// OnNUMANode targets the pool at all cores of the given NUMA node.
func (b *WorkerPoolBuilder) OnNUMANode(node affinity.NUMANode) *WorkerPoolBuilder {
	b.numaNode = node
	return b
}

// ThreadsPerCore returns the configured number of threads per core.
func (b *WorkerPoolBuilder) ThreadsPerCore() uint {
	return b.threadsPerCore
}

// Cores returns the configured explicit core set.
func (b *WorkerPoolBuilder) Cores() affinity.CoreSet {
	return b.cores
}

// TargetNUMANode returns the configured NUMA node target.
func (b *WorkerPoolBuilder) TargetNUMANode() affinity.NUMANode {
	return b.numaNode
}

// Build validates the configuration and creates the WorkerPool. The pool
// has threadsPerCore × |target cores| worker threads, each pinned to its
// assigned core.
func (b *WorkerPoolBuilder) Build() (*WorkerPool, error) {
	if b.threadsPerCore == 0 {
		return nil, fmt.Errorf("%w: threads per core must be greater than zero", ErrInvalidWorkerPoolConfig)
	}

	hasCores := !b.cores.Empty()
	hasNode := !b.numaNode.Empty()

	if !hasCores && !hasNode {
		return nil, fmt.Errorf("%w: either cores or a NUMA node must be set", ErrInvalidWorkerPoolConfig)
	}
	if hasCores && hasNode {
		return nil, fmt.Errorf("%w: cores and NUMA node cannot both be set", ErrInvalidWorkerPoolConfig)
	}

	targetCores := b.cores
	if hasNode {
		targetCores = b.numaNode.Cores()
	}

	return newWorkerPool(b.threadsPerCore, targetCores), nil
}
