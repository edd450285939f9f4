// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hub

import "fmt"

// Index addresses a storage slot. Slots are recycled; an Index alone does
// not identify a resource across recycling.
type Index = uint32

// Epoch disambiguates successive occupants of a slot. It starts at 1 for
// a slot's first occupant and is bumped on every recycle, so the zero
// value never matches a live slot.
type Epoch = uint32

// ID identifies a resource without owning it. IDs are compared field by
// field; two IDs are the same resource only if both index and epoch match.
//
// The zero ID is invalid (epoch 0 never matches a live slot).
type ID struct {
	// Index is the storage slot the resource occupies.
	Index Index

	// Epoch is the slot's occupancy generation this ID refers to.
	Epoch Epoch
}

// String formats the ID as "index@epoch" for diagnostics.
func (id ID) String() string {
	return fmt.Sprintf("%d@%d", id.Index, id.Epoch)
}
