//go:build linux

// File: affinity/processor_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux Processor backend on sched_getaffinity/sched_setaffinity, with
// NUMA topology read from sysfs. No cgo.

package affinity

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// maxCoreCount bounds the affinity mask scan. Matches CPU_SETSIZE.
const maxCoreCount = 1 << 10

const numaSysfsRoot = "/sys/devices/system/node"

type processorLinux struct {
	// sysfs root, replaceable in tests
	numaRoot string
}

func newPlatformProcessor() Processor {
	return &processorLinux{numaRoot: numaSysfsRoot}
}

func (p *processorLinux) FindAvailableCores() (CoreSet, error) {
	var mask unix.CPUSet
	if err := unix.SchedGetaffinity(0, &mask); err != nil {
		return CoreSet{}, fmt.Errorf("affinity: sched_getaffinity: %w", err)
	}

	cores := NewCoreSet()
	for id := 0; id < maxCoreCount; id++ {
		if mask.IsSet(id) {
			cores.Add(NewCore(uint(id)))
		}
	}
	return cores, nil
}

func (p *processorLinux) FindAvailableNumaNodes() ([]NUMANode, error) {
	available, err := p.FindAvailableCores()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(p.numaRoot)
	if err != nil {
		// No NUMA sysfs tree: present a single pseudo-node covering all
		// cores the thread may run on.
		return []NUMANode{NewNUMANode(0, available)}, nil
	}

	var nodes []NUMANode
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), "node") {
			continue
		}
		nodeID, err := strconv.ParseUint(strings.TrimPrefix(entry.Name(), "node"), 10, 32)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(filepath.Join(p.numaRoot, entry.Name(), "cpulist"))
		if err != nil {
			continue
		}

		nodeCores := NewCoreSet()
		for _, id := range parseCPUList(strings.TrimSpace(string(data))) {
			core := NewCore(id)
			if available.Contains(core) {
				nodeCores.Add(core)
			}
		}
		// nodes the thread cannot execute on are not reported
		if nodeCores.Empty() {
			continue
		}
		nodes = append(nodes, NewNUMANode(uint(nodeID), nodeCores))
	}

	if len(nodes) == 0 {
		return []NUMANode{NewNUMANode(0, available)}, nil
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Less(nodes[j]) })
	return nodes, nil
}

func (p *processorLinux) SetThreadAffinity(cores CoreSet) error {
	if cores.Empty() {
		return fmt.Errorf("affinity: cannot set affinity to an empty core set")
	}

	var mask unix.CPUSet
	mask.Zero()
	for _, core := range cores.Slice() {
		mask.Set(int(core.ID()))
	}

	if err := unix.SchedSetaffinity(0, &mask); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity: %w", err)
	}
	return nil
}

// parseCPUList expands a sysfs cpulist string such as "0-3,8,10-11" into
// individual core ids.
func parseCPUList(cpuList string) []uint {
	var cpus []uint
	if cpuList == "" {
		return cpus
	}
	for _, part := range strings.Split(cpuList, ",") {
		part = strings.TrimSpace(part)
		if first, rest, ok := strings.Cut(part, "-"); ok {
			start, errStart := strconv.ParseUint(first, 10, 32)
			end, errEnd := strconv.ParseUint(rest, 10, 32)
			if errStart != nil || errEnd != nil {
				continue
			}
			for id := start; id <= end; id++ {
				cpus = append(cpus, uint(id))
			}
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			continue
		}
		cpus = append(cpus, uint(id))
	}
	return cpus
}
