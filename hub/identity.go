// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hub

import "fmt"

// IdentityManager allocates and recycles [ID] values. Freed slot indices
// go on a free list and are handed out again with a bumped epoch, so any
// ID minted for the previous occupant stops validating.
//
// IdentityManager is not safe for concurrent use; the layer above guards
// it with whatever lock protects resource creation.
type IdentityManager struct {
	free   []Index
	epochs []Epoch
}

// NewIdentityManager creates an empty manager. The first allocation
// returns index 0, epoch 1.
func NewIdentityManager() *IdentityManager {
	return &IdentityManager{}
}

// Alloc returns a fresh ID. Recycled slots are preferred over growing the
// index space.
func (m *IdentityManager) Alloc() ID {
	if n := len(m.free); n > 0 {
		index := m.free[n-1]
		m.free = m.free[:n-1]
		return ID{Index: index, Epoch: m.epochs[index]}
	}
	// #nosec G115 -- slot count is bounded by live resources, well under uint32 max
	index := Index(len(m.epochs))
	m.epochs = append(m.epochs, 1)
	return ID{Index: index, Epoch: 1}
}

// Free recycles an ID's slot. The slot's epoch is bumped immediately, so
// the freed ID (and any copy of it) no longer validates anywhere.
//
// Free panics if the ID does not match the slot's current epoch; freeing
// a stale handle is an upstream bookkeeping bug.
func (m *IdentityManager) Free(id ID) {
	if int(id.Index) >= len(m.epochs) {
		panic(fmt.Sprintf("hub: free of unallocated slot %d", id.Index))
	}
	if m.epochs[id.Index] != id.Epoch {
		panic(fmt.Sprintf("hub: free of stale handle %v (slot at epoch %d)", id, m.epochs[id.Index]))
	}
	m.epochs[id.Index]++
	m.free = append(m.free, id.Index)
}
