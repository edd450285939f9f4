// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package track

import "github.com/gogpu/gputypes"

// Flags constrains the usage types a [Tracker] can manage: any bitmask
// whose bits are independent access modes. The tracker needs only three
// things from a usage type (bitwise OR, equality, and an exclusivity
// test) and the first two come straight from the constraint. Exclusivity
// is supplied per tracker as a write mask (see [NewTracker]): a usage is
// exclusive when it intersects the mask, meaning it implies a write that
// cannot coexist with any other concurrent access.
type Flags interface {
	~uint32 | ~uint64
}

// BufferWriteUsages is the set of buffer usages that imply a write.
// A combined buffer usage intersecting this mask is exclusive: it cannot
// share the resource with any concurrent access.
const BufferWriteUsages = gputypes.BufferUsageMapWrite |
	gputypes.BufferUsageCopyDst |
	gputypes.BufferUsageStorage

// TextureWriteUsages is the set of texture usages that imply a write.
// Storage binding counts as a write because WebGPU storage textures are
// writable from shaders.
const TextureWriteUsages = gputypes.TextureUsageCopyDst |
	gputypes.TextureUsageStorageBinding |
	gputypes.TextureUsageRenderAttachment

// NewBufferTracker creates an empty tracker for buffer usages, with
// exclusivity defined by [BufferWriteUsages].
func NewBufferTracker() *Tracker[gputypes.BufferUsage] {
	return NewTracker[gputypes.BufferUsage](BufferWriteUsages)
}

// NewTextureTracker creates an empty tracker for texture usages, with
// exclusivity defined by [TextureWriteUsages].
func NewTextureTracker() *Tracker[gputypes.TextureUsage] {
	return NewTracker[gputypes.TextureUsage](TextureWriteUsages)
}
