// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hub provides generational resource handles and the supporting
// machinery the track package builds on: identity allocation, slot-indexed
// storage of live resource objects, and shared liveness reference counts.
//
// # Generational handles
//
// A GPU resource is identified by an [ID], a (slot index, epoch) pair.
// Slot indices are recycled aggressively; the epoch is bumped every time a
// slot is reused, so a handle held past its resource's destruction can be
// detected instead of silently aliasing the slot's new occupant. An ID is
// valid only while its epoch matches the slot's current epoch.
//
// [IdentityManager] hands out IDs and recycles them, [Storage] maps live
// IDs to resource objects, and [RefCount] is the shared liveness token that
// trackers clone into their entries.
//
// # Validation discipline
//
// Epoch mismatches are programming errors in the layer above (a stale
// handle outliving its slot), never user input. All lookups in this
// package and in package track panic on mismatch rather than returning an
// error.
package hub
