// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package track

import (
	"fmt"

	"github.com/gogpu/track/hub"
)

// HazardError reports an incompatible concurrent usage: the resource is
// tracked with an exclusive-conflicting usage and the call's permit offers
// no legal way to combine or supersede it. It is a recoverable validation
// failure: the recording that produced it must be rejected, but the
// tracker remains in a well-defined state (see [Tracker.ConsumeByExtend]
// for the partial-merge caveat).
//
// Match with errors.As:
//
//	var hazard *track.HazardError[gputypes.BufferUsage]
//	if errors.As(err, &hazard) {
//	    reject(hazard.ID, hazard.From, hazard.To)
//	}
type HazardError[U Flags] struct {
	// ID is the resource whose usages conflict.
	ID hub.ID

	// From is the usage already tracked for the resource.
	From U

	// To is the usage that could not be applied on top of From.
	To U
}

// Error implements the error interface.
func (e *HazardError[U]) Error() string {
	return fmt.Sprintf("track: usage conflict on resource %v: %#x tracked, %#x requested",
		e.ID, uint64(e.From), uint64(e.To))
}
