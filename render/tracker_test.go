// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/google/uuid"
)

func TestTrackerObserve(t *testing.T) {
	tr := NewTracker()
	id := uuid.New()

	tests := []struct {
		name         string
		geom, index  uint64
		wantGeometry bool
		wantIndex    bool
	}{
		{"first sight uploads both", 1, 1, true, true},
		{"unchanged uploads nothing", 1, 1, false, false},
		{"geometry bump", 2, 1, true, false},
		{"index bump", 2, 2, false, true},
		{"both bump", 3, 3, true, true},
		{"steady again", 3, 3, false, false},
	}

	for _, tt := range tests {
		geometry, index := tr.Observe(id, tt.geom, tt.index)
		if geometry != tt.wantGeometry || index != tt.wantIndex {
			t.Errorf("%s: Observe() = (%v, %v), want (%v, %v)",
				tt.name, geometry, index, tt.wantGeometry, tt.wantIndex)
		}
	}
}

func TestTrackerPerLine(t *testing.T) {
	tr := NewTracker()
	a, b := uuid.New(), uuid.New()

	tr.Observe(a, 1, 1)
	if g, i := tr.Observe(b, 1, 1); !g || !i {
		t.Error("unseen line did not report a full upload")
	}
	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tr.Len())
	}
}

func TestTrackerForget(t *testing.T) {
	tr := NewTracker()
	id := uuid.New()

	tr.Observe(id, 5, 5)
	tr.Forget(id)

	if g, i := tr.Observe(id, 5, 5); !g || !i {
		t.Error("forgotten line did not report a full upload")
	}
	tr.Forget(uuid.New())
}
