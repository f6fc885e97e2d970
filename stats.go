// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

// Stats describes the shape of a Map and counts the layout changes it
// has gone through.
type Stats struct {
	Len    int
	Layout Layout
	// IndexWidth is log2 of the index slot count. It is zero for the
	// array layout.
	IndexWidth uint8
	// IndexSlots is the index slot count, zero for the array layout.
	IndexSlots int
	// Tombstones is the number of deleted entries still held in the
	// table arena.
	Tombstones int

	Promotions  uint64 // array to table, on Set
	Demotions   uint64 // table to array, on Compact
	Grows       uint64 // index widened on insert
	Reindexes   uint64 // tombstones purged and index rebuilt in place
	Compactions uint64 // calls to Compact
}

// Stats returns a snapshot of m's shape and counters.
func (m *Map[K, E]) Stats() Stats {
	if m == nil {
		return Stats{}
	}
	s := m.stats
	s.Len = m.Len()
	s.Layout = m.Layout()
	if t, ok := m.lay.(*tableLayout[K, E]); ok {
		s.IndexWidth = t.ibBit
		s.IndexSlots = len(t.index)
		s.Tombstones = t.tombstones()
	}
	return s
}
