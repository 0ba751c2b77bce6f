// File: worker/builder_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package worker

import (
	"errors"
	"testing"

	"github.com/bignacio/dxpool/affinity"
)

func makeTestCores(numCores uint) affinity.CoreSet {
	cores := affinity.NewCoreSet()
	for i := uint(0); i < numCores; i++ {
		cores.Add(affinity.NewCore(i))
	}
	return cores
}

func TestBuilderAccessorsWithCores(t *testing.T) {
	const threadsPerCore = 7
	cores := makeTestCores(3)

	builder := NewWorkerPoolBuilder().WithThreadsPerCore(threadsPerCore).OnCores(cores)

	if builder.ThreadsPerCore() != threadsPerCore {
		t.Errorf("expected %d threads per core, got %d", threadsPerCore, builder.ThreadsPerCore())
	}
	if !builder.Cores().Equal(cores) {
		t.Error("builder must report the configured cores")
	}
	if !builder.TargetNUMANode().Empty() {
		t.Error("NUMA node must stay empty when targeting cores")
	}
}

func TestBuilderAccessorsWithNUMANode(t *testing.T) {
	const threadsPerCore = 7
	node := affinity.NewNUMANode(0, makeTestCores(2))

	builder := NewWorkerPoolBuilder().WithThreadsPerCore(threadsPerCore).OnNUMANode(node)

	if builder.ThreadsPerCore() != threadsPerCore {
		t.Errorf("expected %d threads per core, got %d", threadsPerCore, builder.ThreadsPerCore())
	}
	if !builder.TargetNUMANode().Equal(node) {
		t.Error("builder must report the configured NUMA node")
	}
	if !builder.Cores().Empty() {
		t.Error("core set must stay empty when targeting a NUMA node")
	}
}

func TestBuilderRejectsMissingThreadsPerCore(t *testing.T) {
	_, err := NewWorkerPoolBuilder().OnCores(makeTestCores(3)).Build()

	if !errors.Is(err, ErrInvalidWorkerPoolConfig) {
		t.Fatalf("expected ErrInvalidWorkerPoolConfig, got %v", err)
	}
}

func TestBuilderRejectsMissingTarget(t *testing.T) {
	_, err := NewWorkerPoolBuilder().WithThreadsPerCore(1).Build()

	if !errors.Is(err, ErrInvalidWorkerPoolConfig) {
		t.Fatalf("expected ErrInvalidWorkerPoolConfig, got %v", err)
	}
}

func TestBuilderRejectsBothCoresAndNUMANode(t *testing.T) {
	cores := makeTestCores(3)
	node := affinity.NewNUMANode(0, cores)

	_, err := NewWorkerPoolBuilder().
		OnCores(cores).
		OnNUMANode(node).
		WithThreadsPerCore(1).
		Build()

	if !errors.Is(err, ErrInvalidWorkerPoolConfig) {
		t.Fatalf("expected ErrInvalidWorkerPoolConfig, got %v", err)
	}
}

func verifyPoolSizeFromCores(t *testing.T, threadsPerCore, numCores uint) {
	t.Helper()

	pool, err := NewWorkerPoolBuilder().
		WithThreadsPerCore(threadsPerCore).
		OnCores(makeTestCores(numCores)).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer pool.Shutdown()

	if pool.Size() != int(threadsPerCore*numCores) {
		t.Fatalf("expected %d workers, got %d", threadsPerCore*numCores, pool.Size())
	}
}

func verifyPoolSizeFromNUMANode(t *testing.T, threadsPerCore, numCores uint) {
	t.Helper()

	node := affinity.NewNUMANode(0, makeTestCores(numCores))
	pool, err := NewWorkerPoolBuilder().
		WithThreadsPerCore(threadsPerCore).
		OnNUMANode(node).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer pool.Shutdown()

	if pool.Size() != int(threadsPerCore*numCores) {
		t.Fatalf("expected %d workers, got %d", threadsPerCore*numCores, pool.Size())
	}
}

func TestBuilderWorkerCounts(t *testing.T) {
	t.Run("one thread per core, multiple cores", func(t *testing.T) {
		verifyPoolSizeFromCores(t, 1, 3)
	})
	t.Run("multiple threads per core, one core", func(t *testing.T) {
		verifyPoolSizeFromCores(t, 7, 1)
	})
	t.Run("multiple threads per core, multiple cores", func(t *testing.T) {
		verifyPoolSizeFromCores(t, 4, 2)
	})
	t.Run("NUMA node, one thread per core", func(t *testing.T) {
		verifyPoolSizeFromNUMANode(t, 1, 3)
	})
	t.Run("NUMA node, multiple threads per core", func(t *testing.T) {
		verifyPoolSizeFromNUMANode(t, 3, 4)
	})
}
