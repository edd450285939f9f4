// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package track

// Permit is the set of merge strategies a call site may use when a
// resource's requested usage differs from its tracked usage. The two bits
// combine freely; a zero Permit allows neither, in which case any change
// of usage is a hazard.
type Permit uint32

const (
	// PermitExtend allows OR-merging the new usage into the current one,
	// as long as the union stays non-exclusive. Render pass recording uses
	// this: the usage must stay constant across the pass, but the decision
	// on what it is can wait until the pass ends.
	PermitExtend Permit = 1 << iota

	// PermitReplace allows overwriting the current usage with the new one.
	// Linear command recording uses this, where the previous usage has
	// already been synchronized and can simply be superseded.
	PermitReplace
)

// Allows reports whether p contains all strategy bits in q.
func (p Permit) Allows(q Permit) bool {
	return p&q == q
}
