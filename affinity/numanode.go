// File: affinity/numanode.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// NUMANode value type: a memory-affinity domain and the cores within it.

package affinity

// NUMANode identifies a NUMA node together with the cores in that node.
// The zero value is an empty node, distinguishable through Empty().
// Nodes are ordered by id; equality requires both id and core set to match.
type NUMANode struct {
	cores   CoreSet
	id      uint
	present bool
}

// NewNUMANode creates a non-empty NUMANode with the given id and cores.
func NewNUMANode(id uint, cores CoreSet) NUMANode {
	return NUMANode{id: id, cores: cores, present: true}
}

// Empty reports whether no node id was set.
func (n NUMANode) Empty() bool {
	return !n.present
}

// ID returns the NUMA node id.
func (n NUMANode) ID() uint {
	return n.id
}

// Cores returns the set of cores associated with this node.
func (n NUMANode) Cores() CoreSet {
	return n.cores
}

// Less reports whether n orders before other. Nodes order by id.
func (n NUMANode) Less(other NUMANode) bool {
	return n.id < other.id
}

// Equal reports whether both nodes have the same id and the same cores.
func (n NUMANode) Equal(other NUMANode) bool {
	return n.id == other.id && n.cores.Equal(other.cores)
}
