// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hub

import "fmt"

// slot is one storage cell. live distinguishes an occupied cell from a
// vacated one whose index has not been reallocated yet.
type slot[T any] struct {
	value T
	epoch Epoch
	live  bool
}

// Storage maps live IDs to resource objects. Cells are addressed directly
// by slot index; every access validates the ID's epoch against the cell.
//
// Storage is not safe for concurrent use.
type Storage[T any] struct {
	slots []slot[T]
}

// NewStorage creates an empty storage table.
func NewStorage[T any]() *Storage[T] {
	return &Storage[T]{}
}

// Insert places value under id, growing the table as needed. Inserting
// over a live slot panics; the identity manager must have vacated the
// index first.
func (s *Storage[T]) Insert(id ID, value T) {
	for int(id.Index) >= len(s.slots) {
		s.slots = append(s.slots, slot[T]{})
	}
	c := &s.slots[id.Index]
	if c.live {
		panic(fmt.Sprintf("hub: insert over live slot %d", id.Index))
	}
	c.value = value
	c.epoch = id.Epoch
	c.live = true
}

// Get returns the resource for id. Callers are expected to have validated
// existence already; a dead slot or an epoch mismatch is an internal
// consistency violation and panics.
func (s *Storage[T]) Get(id ID) T {
	if int(id.Index) >= len(s.slots) || !s.slots[id.Index].live {
		panic(fmt.Sprintf("hub: get of dead handle %v", id))
	}
	c := &s.slots[id.Index]
	if c.epoch != id.Epoch {
		panic(fmt.Sprintf("hub: get of stale handle %v (slot at epoch %d)", id, c.epoch))
	}
	return c.value
}

// Remove vacates id's slot and returns the stored value. The epoch must
// match (panic otherwise). Removing an already-dead slot reports false.
func (s *Storage[T]) Remove(id ID) (T, bool) {
	var zero T
	if int(id.Index) >= len(s.slots) || !s.slots[id.Index].live {
		return zero, false
	}
	c := &s.slots[id.Index]
	if c.epoch != id.Epoch {
		panic(fmt.Sprintf("hub: remove of stale handle %v (slot at epoch %d)", id, c.epoch))
	}
	value := c.value
	c.value = zero
	c.live = false
	return value, true
}

// Contains reports whether id refers to a live slot with a matching epoch.
func (s *Storage[T]) Contains(id ID) bool {
	return int(id.Index) < len(s.slots) &&
		s.slots[id.Index].live &&
		s.slots[id.Index].epoch == id.Epoch
}
