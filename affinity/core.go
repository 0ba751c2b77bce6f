// File: affinity/core.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core and CoreSet value types identifying OS-schedulable CPUs.

package affinity

import "sort"

// Core identifies a single OS-schedulable CPU. Cores are ordered and
// compared by their id; they are cheap to copy.
type Core struct {
	id uint
}

// NewCore creates a Core with the given core id.
func NewCore(id uint) Core {
	return Core{id: id}
}

// ID returns the core id.
func (c Core) ID() uint {
	return c.id
}

// Less reports whether c orders before other. Cores order by id.
func (c Core) Less(other Core) bool {
	return c.id < other.id
}

// CoreSet is a set of Cores. The zero value is an empty, usable set.
type CoreSet struct {
	cores map[Core]struct{}
}

// NewCoreSet creates a CoreSet holding the given cores.
func NewCoreSet(cores ...Core) CoreSet {
	set := CoreSet{cores: make(map[Core]struct{}, len(cores))}
	for _, core := range cores {
		set.cores[core] = struct{}{}
	}
	return set
}

// Add inserts a core into the set.
func (s *CoreSet) Add(core Core) {
	if s.cores == nil {
		s.cores = make(map[Core]struct{})
	}
	s.cores[core] = struct{}{}
}

// Contains reports whether the set holds the given core.
func (s CoreSet) Contains(core Core) bool {
	_, ok := s.cores[core]
	return ok
}

// Len returns the number of cores in the set.
func (s CoreSet) Len() int {
	return len(s.cores)
}

// Empty reports whether the set has no cores.
func (s CoreSet) Empty() bool {
	return len(s.cores) == 0
}

// Slice returns the cores in ascending id order.
func (s CoreSet) Slice() []Core {
	cores := make([]Core, 0, len(s.cores))
	for core := range s.cores {
		cores = append(cores, core)
	}
	sort.Slice(cores, func(i, j int) bool { return cores[i].Less(cores[j]) })
	return cores
}

// Equal reports whether both sets hold exactly the same cores.
func (s CoreSet) Equal(other CoreSet) bool {
	if len(s.cores) != len(other.cores) {
		return false
	}
	for core := range s.cores {
		if !other.Contains(core) {
			return false
		}
	}
	return true
}
