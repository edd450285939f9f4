// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package track

import (
	"fmt"
	"iter"

	"github.com/gogpu/track/hub"
)

// entry is the tracked state of one resource within one tracker.
// init is fixed at first touch and consulted only by cross-scope merges;
// last follows every subsequent access.
type entry[U Flags] struct {
	ref   hub.RefCount
	init  U
	last  U
	epoch hub.Epoch
}

// Tracker records, per resource, the usage a recording scope has observed
// so far. It validates generational handles on every touch, applies the
// permit-controlled merge policies on usage changes, and folds child
// scopes into parent scopes while computing the transitions the backend
// must synchronize.
//
// A Tracker is exclusively owned by one recording scope and is not safe
// for concurrent use; scopes interact only through [Tracker.ConsumeByReplace]
// and [Tracker.ConsumeByExtend] at scope boundaries.
type Tracker[U Flags] struct {
	entries   map[hub.Index]entry[U]
	writeMask U
}

// NewTracker creates an empty tracker. writeMask defines exclusivity for
// the usage type: any usage intersecting it implies a write and cannot be
// shared. Use [NewBufferTracker] and [NewTextureTracker] for the standard
// resource kinds.
func NewTracker[U Flags](writeMask U) *Tracker[U] {
	return &Tracker[U]{
		entries:   make(map[hub.Index]entry[U]),
		writeMask: writeMask,
	}
}

// exclusive reports whether u implies a write that cannot be concurrently
// shared.
func (t *Tracker[U]) exclusive(u U) bool {
	return u&t.writeMask != 0
}

// validateEpoch panics when a handle's epoch disagrees with the tracked
// entry. A mismatch means a stale handle survived its slot's recycling,
// an invariant violation in the layer above, never user input.
func validateEpoch(id hub.ID, tracked hub.Epoch) {
	if tracked != id.Epoch {
		panic(fmt.Sprintf("track: stale handle %v touches entry at epoch %d", id, tracked))
	}
}

// Len returns the number of tracked resources.
func (t *Tracker[U]) Len() int {
	return len(t.entries)
}

// Query reads the tracked usage of id without applying any merge policy.
// On the resource's first touch in this tracker an entry is created with
// init = last = def, a clone of ref is retained, and first is true.
// Otherwise the current last usage is returned with first = false.
func (t *Tracker[U]) Query(id hub.ID, ref hub.RefCount, def U) (usage U, first bool) {
	if e, ok := t.entries[id.Index]; ok {
		validateEpoch(id, e.epoch)
		return e.last, false
	}
	t.entries[id.Index] = entry[U]{
		ref:   ref.Clone(),
		init:  def,
		last:  def,
		epoch: id.Epoch,
	}
	return def, true
}

// Transit applies a requested usage to id under the given permit and
// reports what happened. The decision order is fixed:
//
//  1. Untracked resource: an entry is created with the requested usage
//     (Init).
//  2. Requested equals tracked: nothing changes (Keep), regardless of
//     permit.
//  3. Extend permitted and the OR of both usages is non-exclusive: the
//     union becomes the tracked usage (Extend).
//  4. Replace permitted: the requested usage overwrites the tracked one
//     (Replace).
//  5. Otherwise a *[HazardError] naming both usages is returned and the
//     entry is left unchanged.
func (t *Tracker[U]) Transit(id hub.ID, ref hub.RefCount, usage U, permit Permit) (Outcome[U], error) {
	e, ok := t.entries[id.Index]
	if !ok {
		t.entries[id.Index] = entry[U]{
			ref:   ref.Clone(),
			init:  usage,
			last:  usage,
			epoch: id.Epoch,
		}
		return Outcome[U]{Kind: OutcomeInit}, nil
	}
	validateEpoch(id, e.epoch)

	old := e.last
	switch {
	case usage == old:
		return Outcome[U]{Kind: OutcomeKeep}, nil

	case permit.Allows(PermitExtend) && !t.exclusive(old|usage):
		e.last = old | usage
		t.entries[id.Index] = e
		return Outcome[U]{Kind: OutcomeExtend, Old: old}, nil

	case permit.Allows(PermitReplace):
		e.last = usage
		t.entries[id.Index] = e
		return Outcome[U]{Kind: OutcomeReplace, Old: old}, nil

	default:
		Logger().Debug("track: usage hazard",
			"resource", id.String(),
			"tracked", uint64(old),
			"requested", uint64(usage))
		return Outcome[U]{}, &HazardError[U]{ID: id, From: old, To: usage}
	}
}

// Remove erases id's entry and releases its liveness clone. It reports
// false when the resource is not tracked. A tracked entry with a
// mismatched epoch panics.
func (t *Tracker[U]) Remove(id hub.ID) bool {
	e, ok := t.entries[id.Index]
	if !ok {
		return false
	}
	validateEpoch(id, e.epoch)
	e.ref.Release()
	delete(t.entries, id.Index)
	return true
}

// PendingTransition is one synchronization obligation produced by
// [Tracker.ConsumeByReplace]: resource ID must be transitioned from usage
// From to usage To before the consumed scope's work may execute.
type PendingTransition[U Flags] struct {
	ID   hub.ID
	From U
	To   U
}

// ConsumeByReplace folds other's final state into t and returns the
// transitions the backend must synchronize. It is used at submission
// boundaries, where the child scope's internal hazards have already been
// checked and only its net effect matters.
//
// Resources unknown to t are adopted wholesale; this counts as t's first
// touch and needs no transition. For resources known to both, t's tracked
// usage is swapped to other's final usage; a transition is emitted unless
// the usage t held equals the usage other started from, in which case the
// change was already accounted for when other began.
//
// The order of the returned transitions follows map iteration and is
// unspecified. No hazard detection happens here.
func (t *Tracker[U]) ConsumeByReplace(other *Tracker[U]) []PendingTransition[U] {
	var pending []PendingTransition[U]
	for index, o := range other.entries {
		e, ok := t.entries[index]
		if !ok {
			o.ref = o.ref.Clone()
			t.entries[index] = o
			continue
		}
		id := hub.ID{Index: index, Epoch: o.epoch}
		validateEpoch(id, e.epoch)

		old := e.last
		e.last = o.last
		t.entries[index] = e
		if old != o.init {
			pending = append(pending, PendingTransition[U]{ID: id, From: old, To: o.last})
		}
	}
	Logger().Debug("track: consumed scope by replace",
		"entries", len(other.entries),
		"transitions", len(pending))
	return pending
}

// ConsumeByExtend folds other into t by OR-merging usages, without
// producing transitions. It is used at pass boundaries, where the pass's
// usages must be compatible with what the surrounding scope already holds.
//
// Resources unknown to t are adopted wholesale. For resources known to
// both, differing usages are unioned; if a union is exclusive the merge
// stops and a *[HazardError] naming the resource and both usages is
// returned. Entries merged before the failing one remain merged; the
// operation is deliberately not transactional.
func (t *Tracker[U]) ConsumeByExtend(other *Tracker[U]) error {
	for index, o := range other.entries {
		e, ok := t.entries[index]
		if !ok {
			o.ref = o.ref.Clone()
			t.entries[index] = o
			continue
		}
		id := hub.ID{Index: index, Epoch: o.epoch}
		validateEpoch(id, e.epoch)

		old := e.last
		if old != o.last {
			merged := old | o.last
			if t.exclusive(merged) {
				Logger().Debug("track: usage hazard on scope merge",
					"resource", id.String(),
					"tracked", uint64(old),
					"incoming", uint64(o.last))
				return &HazardError[U]{ID: id, From: old, To: o.last}
			}
			e.last = merged
			t.entries[index] = e
		}
	}
	return nil
}

// Used returns an iterator over the handles of all tracked resources,
// each reconstructed from its stored epoch and yielded exactly once.
// Every call returns a fresh, independent traversal; the order is
// unspecified.
func (t *Tracker[U]) Used() iter.Seq[hub.ID] {
	return func(yield func(hub.ID) bool) {
		for index, e := range t.entries {
			if !yield(hub.ID{Index: index, Epoch: e.epoch}) {
				return
			}
		}
	}
}

// RefCounted is implemented by stored resource objects that expose their
// shared liveness token. The accessor functions below use it to feed the
// tracker without a second handle lookup.
type RefCounted interface {
	RefCount() hub.RefCount
}

// GetWithExtendedUsage looks id up in storage and transits it under
// [PermitExtend] in one step. On success the stored resource object is
// returned; on a hazard the lookup result is discarded and the error
// carries the conflicting usages.
//
// These accessors exist so call sites recording commands do not pay for a
// second storage lookup; they add no semantics beyond [Tracker.Transit].
func GetWithExtendedUsage[T RefCounted, U Flags](
	t *Tracker[U],
	storage *hub.Storage[T],
	id hub.ID,
	usage U,
) (T, error) {
	item := storage.Get(id)
	if _, err := t.Transit(id, item.RefCount(), usage, PermitExtend); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// GetWithReplacedUsage looks id up in storage and transits it under
// [PermitReplace] in one step. On success it additionally reports the
// usage tracked before the call (ok is false after Init or Keep, where no
// transition is needed).
func GetWithReplacedUsage[T RefCounted, U Flags](
	t *Tracker[U],
	storage *hub.Storage[T],
	id hub.ID,
	usage U,
) (item T, old U, ok bool, err error) {
	item = storage.Get(id)
	outcome, err := t.Transit(id, item.RefCount(), usage, PermitReplace)
	if err != nil {
		var zero T
		return zero, old, false, err
	}
	old, ok = outcome.Prior()
	return item, old, ok, nil
}
