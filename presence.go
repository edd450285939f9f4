// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package track

import "github.com/gogpu/track/hub"

// presenceEntry is the tracked state of one resource in a Presence
// tracker: liveness and generation, nothing else.
type presenceEntry struct {
	ref   hub.RefCount
	epoch hub.Epoch
}

// Presence tracks resources that carry no usage semantics, such as texture
// views, where only liveness and generational validity matter.
// It mirrors [Tracker] minus the whole usage algebra.
//
// Like Tracker, a Presence is exclusively owned by one recording scope
// and is not safe for concurrent use.
type Presence struct {
	entries map[hub.Index]presenceEntry
}

// NewPresence creates an empty presence tracker.
func NewPresence() *Presence {
	return &Presence{entries: make(map[hub.Index]presenceEntry)}
}

// Len returns the number of tracked resources.
func (p *Presence) Len() int {
	return len(p.entries)
}

// Query records that id was observed. It reports true on the resource's
// first observation in this tracker (retaining a clone of ref), false
// afterwards. A tracked entry with a mismatched epoch panics.
func (p *Presence) Query(id hub.ID, ref hub.RefCount) bool {
	if e, ok := p.entries[id.Index]; ok {
		validateEpoch(id, e.epoch)
		return false
	}
	p.entries[id.Index] = presenceEntry{ref: ref.Clone(), epoch: id.Epoch}
	return true
}

// Remove erases id's entry and releases its liveness clone. It reports
// false when the resource is not tracked.
func (p *Presence) Remove(id hub.ID) bool {
	e, ok := p.entries[id.Index]
	if !ok {
		return false
	}
	validateEpoch(id, e.epoch)
	e.ref.Release()
	delete(p.entries, id.Index)
	return true
}

// Consume merges other into p unconditionally by re-observing every entry.
// Presence has no usage state, so no transitions or hazards can arise.
func (p *Presence) Consume(other *Presence) {
	for index, e := range other.entries {
		p.Query(hub.ID{Index: index, Epoch: e.epoch}, e.ref)
	}
}
