// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package track

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestOutcomeKind_String(t *testing.T) {
	tests := []struct {
		kind OutcomeKind
		want string
	}{
		{OutcomeInit, "init"},
		{OutcomeKeep, "keep"},
		{OutcomeExtend, "extend"},
		{OutcomeReplace, "replace"},
		{OutcomeKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("OutcomeKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestOutcome_Prior(t *testing.T) {
	ext := Outcome[gputypes.BufferUsage]{Kind: OutcomeExtend, Old: gputypes.BufferUsageVertex}
	if old, ok := ext.Prior(); !ok || old != gputypes.BufferUsageVertex {
		t.Errorf("extend Prior() = (%#x, %v), want (%#x, true)", old, ok, gputypes.BufferUsageVertex)
	}

	keep := Outcome[gputypes.BufferUsage]{Kind: OutcomeKeep}
	if _, ok := keep.Prior(); ok {
		t.Error("keep Prior() reported a prior usage")
	}

	ini := Outcome[gputypes.BufferUsage]{Kind: OutcomeInit}
	if _, ok := ini.Prior(); ok {
		t.Error("init Prior() reported a prior usage")
	}
}
