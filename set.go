// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package track

import "github.com/gogpu/gputypes"

// Set bundles one tracker per resource kind: everything a recording scope
// has touched. It has no behavior of its own; callers route each resource
// access to the sub-tracker for its kind and merge sets field by field at
// scope boundaries.
type Set struct {
	Buffers  *Tracker[gputypes.BufferUsage]
	Textures *Tracker[gputypes.TextureUsage]
	Views    *Presence
	// TODO: samplers, once the binding model tracks them
}

// NewSet creates a set of empty trackers.
func NewSet() *Set {
	return &Set{
		Buffers:  NewBufferTracker(),
		Textures: NewTextureTracker(),
		Views:    NewPresence(),
	}
}
