// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package track

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/track/hub"
)

// testBuffer is a minimal stored resource exposing its liveness token.
type testBuffer struct {
	label string
	ref   hub.RefCount
}

func (b *testBuffer) RefCount() hub.RefCount { return b.ref }

func newTestStorage(t *testing.T, label string) (*hub.Storage[*testBuffer], hub.ID, *testBuffer) {
	t.Helper()
	storage := hub.NewStorage[*testBuffer]()
	m := hub.NewIdentityManager()
	id := m.Alloc()
	buf := &testBuffer{label: label, ref: hub.NewRefCount()}
	storage.Insert(id, buf)
	return storage, id, buf
}

func TestGetWithExtendedUsage(t *testing.T) {
	storage, id, buf := newTestStorage(t, "vertices")
	tr := NewBufferTracker()

	got, err := GetWithExtendedUsage(tr, storage, id, gputypes.BufferUsageVertex)
	if err != nil {
		t.Fatalf("GetWithExtendedUsage failed: %v", err)
	}
	if got != buf {
		t.Errorf("returned %v, want the stored resource %v", got, buf)
	}
	if usage, _ := tr.Query(id, buf.ref, 0); usage != gputypes.BufferUsageVertex {
		t.Errorf("tracked usage = %#x, want %#x", usage, gputypes.BufferUsageVertex)
	}

	// Extending a write-tracked resource with a read is a hazard.
	tr2 := NewBufferTracker()
	if _, err := GetWithExtendedUsage(tr2, storage, id, gputypes.BufferUsageCopyDst); err != nil {
		t.Fatalf("seeding access failed: %v", err)
	}
	_, err = GetWithExtendedUsage(tr2, storage, id, gputypes.BufferUsageCopySrc)
	var hazard *HazardError[gputypes.BufferUsage]
	if !errors.As(err, &hazard) {
		t.Fatalf("GetWithExtendedUsage returned %v, want *HazardError", err)
	}
	if hazard.From != gputypes.BufferUsageCopyDst {
		t.Errorf("hazard.From = %#x, want %#x", hazard.From, gputypes.BufferUsageCopyDst)
	}
}

func TestGetWithReplacedUsage(t *testing.T) {
	storage, id, buf := newTestStorage(t, "staging")
	tr := NewBufferTracker()

	// First touch: no prior usage.
	got, old, ok, err := GetWithReplacedUsage(tr, storage, id, gputypes.BufferUsageCopyDst)
	if err != nil {
		t.Fatalf("GetWithReplacedUsage failed: %v", err)
	}
	if got != buf {
		t.Errorf("returned %v, want the stored resource %v", got, buf)
	}
	if ok {
		t.Errorf("first access reported a prior usage %#x", old)
	}

	// Replacing reports the superseded usage.
	_, old, ok, err = GetWithReplacedUsage(tr, storage, id, gputypes.BufferUsageCopySrc)
	if err != nil {
		t.Fatalf("GetWithReplacedUsage failed: %v", err)
	}
	if !ok || old != gputypes.BufferUsageCopyDst {
		t.Errorf("prior = (%#x, %v), want (%#x, true)", old, ok, gputypes.BufferUsageCopyDst)
	}

	// Repeating the same usage is a Keep: no prior to synchronize.
	_, _, ok, err = GetWithReplacedUsage(tr, storage, id, gputypes.BufferUsageCopySrc)
	if err != nil {
		t.Fatalf("GetWithReplacedUsage failed: %v", err)
	}
	if ok {
		t.Error("Keep access reported a prior usage")
	}
}
