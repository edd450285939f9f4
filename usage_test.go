// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package track

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestBufferWriteUsages(t *testing.T) {
	tr := NewBufferTracker()

	reads := []gputypes.BufferUsage{
		gputypes.BufferUsageMapRead,
		gputypes.BufferUsageCopySrc,
		gputypes.BufferUsageVertex,
		gputypes.BufferUsageUniform,
	}
	for _, u := range reads {
		if tr.exclusive(u) {
			t.Errorf("buffer usage %#x classified exclusive, want shareable", u)
		}
	}

	writes := []gputypes.BufferUsage{
		gputypes.BufferUsageMapWrite,
		gputypes.BufferUsageCopyDst,
		gputypes.BufferUsageStorage,
	}
	for _, u := range writes {
		if !tr.exclusive(u) {
			t.Errorf("buffer usage %#x classified shareable, want exclusive", u)
		}
		// One write bit poisons any union.
		if !tr.exclusive(u | gputypes.BufferUsageCopySrc) {
			t.Errorf("union %#x classified shareable, want exclusive", u|gputypes.BufferUsageCopySrc)
		}
	}
}

func TestTextureWriteUsages(t *testing.T) {
	tr := NewTextureTracker()

	reads := []gputypes.TextureUsage{
		gputypes.TextureUsageCopySrc,
		gputypes.TextureUsageTextureBinding,
	}
	for _, u := range reads {
		if tr.exclusive(u) {
			t.Errorf("texture usage %#x classified exclusive, want shareable", u)
		}
	}

	writes := []gputypes.TextureUsage{
		gputypes.TextureUsageCopyDst,
		gputypes.TextureUsageStorageBinding,
		gputypes.TextureUsageRenderAttachment,
	}
	for _, u := range writes {
		if !tr.exclusive(u) {
			t.Errorf("texture usage %#x classified shareable, want exclusive", u)
		}
	}
}
