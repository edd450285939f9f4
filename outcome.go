// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package track

// OutcomeKind tags what [Tracker.Transit] did to a resource's tracked
// state.
type OutcomeKind uint8

const (
	// OutcomeInit means the resource was not tracked before this access;
	// an entry was created with the requested usage.
	OutcomeInit OutcomeKind = iota

	// OutcomeKeep means the requested usage equals the tracked usage and
	// nothing changed. Equality is checked before any permit policy, so a
	// no-op access is always Keep even under a zero permit.
	OutcomeKeep

	// OutcomeExtend means the requested usage was OR-merged into the
	// tracked usage. The prior usage is available via [Outcome.Prior].
	OutcomeExtend

	// OutcomeReplace means the tracked usage was overwritten with the
	// requested one. The prior usage is available via [Outcome.Prior].
	OutcomeReplace
)

// String returns the kind's name for diagnostics.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeInit:
		return "init"
	case OutcomeKeep:
		return "keep"
	case OutcomeExtend:
		return "extend"
	case OutcomeReplace:
		return "replace"
	}
	return "unknown"
}

// Outcome describes the state change a successful [Tracker.Transit]
// performed. For Extend and Replace it carries the usage that was tracked
// before the call, which is what a barrier emitter needs to transition
// away from.
type Outcome[U Flags] struct {
	Kind OutcomeKind

	// Old is the usage tracked before the call. Meaningful only when
	// Kind is OutcomeExtend or OutcomeReplace; use [Outcome.Prior] to
	// access it safely.
	Old U
}

// Prior returns the usage tracked before the transit, and whether one
// existed (false for Init and Keep, where no synchronization is needed).
func (o Outcome[U]) Prior() (U, bool) {
	switch o.Kind {
	case OutcomeExtend, OutcomeReplace:
		return o.Old, true
	}
	var zero U
	return zero, false
}
