// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package track implements resource-usage hazard tracking for GoGPU's
// WebGPU implementation.
//
// # Overview
//
// Every buffer, texture, and texture view referenced while recording GPU
// work carries a usage: read, write, copy source, and so on. Before that
// work can run on real hardware, the implementation must know, per
// resource, what the previous usage was and what the next one will be, so
// it can insert the right barrier and reject recordings that would race on
// the GPU. Races caught here would otherwise be silent data corruption,
// not crashes.
//
// A recording scope (a render pass, a command buffer) owns a [Set] of
// trackers. Each resource access calls [Tracker.Transit] with the
// requested usage and a [Permit] describing which merge strategies the
// recording context allows: extend-only inside a pass, replace for linear
// command recording. When a scope closes, its trackers fold into the
// parent scope's via [Tracker.ConsumeByExtend] (pass end) or
// [Tracker.ConsumeByReplace] (submission), the latter yielding the
// [PendingTransition] list a backend translates into barriers.
//
// # Handles and liveness
//
// Resources are identified by generational handles ([hub.ID]): a slot
// index plus an epoch bumped on every slot recycle. The tracker validates
// the epoch on every touch and panics on mismatch; a stale handle is an
// internal invariant violation, never user input. Entries hold a clone of
// the resource's [hub.RefCount] so liveness is observable, but the tracker
// never drives destruction.
//
// # Usage algebra
//
// Trackers are generic over any bitmask usage type (see [Flags]). The
// concrete kinds are gputypes.BufferUsage and gputypes.TextureUsage;
// exclusivity ("this usage implies a write and cannot be shared") is a
// write-mask intersection ([BufferWriteUsages], [TextureWriteUsages]).
//
// # Concurrency
//
// Trackers have no internal locking. Each tracker is exclusively owned by
// one recording scope at a time; scopes interact only through the consume
// operations at well-defined boundary points.
package track
