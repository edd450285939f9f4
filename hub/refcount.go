// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hub

import "sync/atomic"

// RefCount is a shared liveness token for a resource. All clones of a
// RefCount share one counter; holders observe how many references exist
// but the count never destroys anything by itself; resource teardown is
// the storage owner's job.
//
// The counter is atomic so that observation stays correct when clones are
// held by trackers living on different goroutines, even though each
// individual tracker is single-mutator.
//
// The zero RefCount is not usable; obtain one from [NewRefCount] or Clone.
type RefCount struct {
	n *atomic.Int64
}

// NewRefCount creates a liveness token with a count of one, representing
// the storage's own reference.
func NewRefCount() RefCount {
	n := new(atomic.Int64)
	n.Store(1)
	return RefCount{n: n}
}

// Clone adds a reference and returns a token sharing the same counter.
func (r RefCount) Clone() RefCount {
	r.n.Add(1)
	return r
}

// Release drops one reference. It reports the count remaining after the
// drop, purely for observation; reaching zero has no side effects here.
func (r RefCount) Release() int64 {
	return r.n.Add(-1)
}

// Count returns the current number of references.
func (r RefCount) Count() int64 {
	return r.n.Load()
}

// Shares reports whether two tokens refer to the same underlying counter,
// i.e. the same resource's liveness.
func (r RefCount) Shares(other RefCount) bool {
	return r.n == other.n
}
