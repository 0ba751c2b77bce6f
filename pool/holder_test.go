// File: pool/holder_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "testing"

func TestIndexHolderZeroValueIsEmpty(t *testing.T) {
	var holder IndexHolder

	if !holder.Empty() {
		t.Fatal("zero value holder must be empty")
	}
}

func TestIndexHolderWithValue(t *testing.T) {
	holder := NewIndexHolder(41)

	if holder.Empty() {
		t.Fatal("holder constructed with a value must not be empty")
	}
	if holder.Get() != 41 {
		t.Fatalf("expected index 41, got %d", holder.Get())
	}
}

func TestIndexHolderHoldsZeroIndex(t *testing.T) {
	holder := NewIndexHolder(0)

	if holder.Empty() {
		t.Fatal("index 0 is a valid value and must not read as empty")
	}
	if holder.Get() != 0 {
		t.Fatalf("expected index 0, got %d", holder.Get())
	}
}
