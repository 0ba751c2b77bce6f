// File: affinity/processor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral Processor capability. The concrete backend is selected
// at build time (processor_linux.go, processor_stub.go).

package affinity

import "errors"

// ErrPlatformUnsupported is returned by every Processor operation on
// platforms without an affinity API backend.
var ErrPlatformUnsupported = errors.New("affinity: not supported on this platform")

// Processor provides CPU topology discovery and thread affinity control.
//
// SetThreadAffinity operates on the calling OS thread; callers must pin
// their goroutine with runtime.LockOSThread first, or the restriction will
// apply to whichever thread the goroutine happens to occupy.
type Processor interface {
	// FindAvailableCores returns the cores the calling thread is currently
	// permitted to run on. If the process is restricted to a subset of the
	// machine's cores, only that subset is returned.
	FindAvailableCores() (CoreSet, error)

	// FindAvailableNumaNodes returns the NUMA nodes the calling thread can
	// execute on, ascending by node id. Each node carries only the cores
	// the thread may run on; nodes without any such core are omitted.
	FindAvailableNumaNodes() ([]NUMANode, error)

	// SetThreadAffinity restricts the calling thread to the given cores.
	SetThreadAffinity(cores CoreSet) error
}

// NewProcessor returns the Processor backend for the current platform.
func NewProcessor() Processor {
	return newPlatformProcessor()
}

// AllAvailableCores is a convenience wrapper returning the cores available
// to the calling thread via a throwaway Processor.
func AllAvailableCores() (CoreSet, error) {
	return NewProcessor().FindAvailableCores()
}
