// File: pool/holder.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// IndexHolder tracks index values while allowing an empty result.

package pool

// IndexHolder carries an index value or nothing. The zero value is empty.
type IndexHolder struct {
	value   uint64
	present bool
}

// NewIndexHolder creates an IndexHolder set to the given index.
func NewIndexHolder(index uint64) IndexHolder {
	return IndexHolder{value: index, present: true}
}

// Empty reports whether no index is held.
func (h IndexHolder) Empty() bool {
	return !h.present
}

// Get returns the held index. It is only defined when Empty() is false,
// so Empty should always be checked first.
func (h IndexHolder) Get() uint64 {
	return h.value
}
