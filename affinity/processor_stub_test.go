//go:build !linux

// File: affinity/processor_stub_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package affinity

import (
	"errors"
	"testing"
)

func TestUnsupportedPlatformErrors(t *testing.T) {
	processor := NewProcessor()

	if _, err := processor.FindAvailableCores(); !errors.Is(err, ErrPlatformUnsupported) {
		t.Errorf("FindAvailableCores: expected ErrPlatformUnsupported, got %v", err)
	}
	if _, err := processor.FindAvailableNumaNodes(); !errors.Is(err, ErrPlatformUnsupported) {
		t.Errorf("FindAvailableNumaNodes: expected ErrPlatformUnsupported, got %v", err)
	}
	if err := processor.SetThreadAffinity(NewCoreSet(NewCore(0))); !errors.Is(err, ErrPlatformUnsupported) {
		t.Errorf("SetThreadAffinity: expected ErrPlatformUnsupported, got %v", err)
	}
}
