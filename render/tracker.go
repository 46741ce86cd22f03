// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/google/uuid"

type versions struct {
	geometry uint64
	index    uint64
}

// Tracker remembers the last geometry and index versions uploaded for each
// line, so renderers only re-upload buffers that changed.
//
// Tracker is not safe for concurrent use.
type Tracker struct {
	seen map[uuid.UUID]versions
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[uuid.UUID]versions)}
}

// Observe records the current versions of line id and reports which
// buffers must be uploaded. A line seen for the first time needs both.
func (t *Tracker) Observe(id uuid.UUID, geometryVersion, indexVersion uint64) (geometry, index bool) {
	prev, ok := t.seen[id]
	t.seen[id] = versions{geometry: geometryVersion, index: indexVersion}
	if !ok {
		return true, true
	}
	return prev.geometry != geometryVersion, prev.index != indexVersion
}

// Forget drops the record of line id. The next Observe reports a full
// upload.
func (t *Tracker) Forget(id uuid.UUID) {
	delete(t.seen, id)
}

// Len returns the number of tracked lines.
func (t *Tracker) Len() int {
	return len(t.seen)
}
