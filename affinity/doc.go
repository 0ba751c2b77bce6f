// File: affinity/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package affinity provides CPU topology discovery and thread affinity
// control for dxpool. It exposes the Core and NUMANode value types and a
// Processor capability for finding the cores and NUMA nodes the calling
// thread may execute on, and for restricting the thread to a core set.
//
// Platform-specific implementations live in separate files guarded by
// build tags (processor_linux.go, processor_stub.go). On platforms without
// an affinity API every Processor method returns ErrPlatformUnsupported.
package affinity
