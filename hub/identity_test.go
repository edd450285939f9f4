// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hub

import "testing"

func TestIdentityManager_Alloc(t *testing.T) {
	m := NewIdentityManager()

	a := m.Alloc()
	b := m.Alloc()

	if a != (ID{Index: 0, Epoch: 1}) {
		t.Errorf("first Alloc() = %v, want 0@1", a)
	}
	if b != (ID{Index: 1, Epoch: 1}) {
		t.Errorf("second Alloc() = %v, want 1@1", b)
	}
}

func TestIdentityManager_RecycleBumpsEpoch(t *testing.T) {
	m := NewIdentityManager()

	a := m.Alloc()
	m.Free(a)

	b := m.Alloc()
	if b.Index != a.Index {
		t.Errorf("recycled Alloc() index = %d, want %d", b.Index, a.Index)
	}
	if b.Epoch != a.Epoch+1 {
		t.Errorf("recycled Alloc() epoch = %d, want %d", b.Epoch, a.Epoch+1)
	}
}

func TestIdentityManager_FreeStalePanics(t *testing.T) {
	m := NewIdentityManager()

	a := m.Alloc()
	m.Free(a)
	m.Alloc() // reoccupy the slot at the new epoch

	defer func() {
		if recover() == nil {
			t.Error("Free of a stale handle did not panic")
		}
	}()
	m.Free(a)
}

func TestIdentityManager_FreeUnallocatedPanics(t *testing.T) {
	m := NewIdentityManager()

	defer func() {
		if recover() == nil {
			t.Error("Free of an unallocated slot did not panic")
		}
	}()
	m.Free(ID{Index: 7, Epoch: 1})
}
