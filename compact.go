// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

// Compact purges deleted entries, recomputes every key's hash and
// rebuilds m in the layout its live count calls for: a table whose
// live count has fallen to the threshold or below becomes an array
// again, and a table above it gets an index sized for its live count.
// Entries keep their relative order. Compact returns m.
func (m *Map[K, E]) Compact() *Map[K, E] {
	if m == nil || m.lay == nil {
		return m
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	m.flags ^= hashWriting

	rehash := func(key K) uint64 { return m.hash(m.seed, key) }
	// The layout decision comes before any index arithmetic. A table
	// that has shrunk to the threshold must never be reindexed in place.
	live := m.lay.len()
	switch l := m.lay.(type) {
	case *arrayLayout[K, E]:
		l.rehash(rehash)
	case *tableLayout[K, E]:
		if live <= m.threshold {
			m.lay = demote(l, rehash)
			m.stats.Demotions++
		} else {
			l.reindex(live, rehash)
			m.stats.Reindexes++
		}
	}
	m.stats.Compactions++

	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
	m.checkInvariants(true)
	return m
}

// reindex drops tombstones from the arena, keeping the order of live
// entries, and rebuilds the index wide enough for want entries. want
// must not be less than t.live. hash, when non-nil, recomputes each
// entry's cached hash.
func (t *tableLayout[K, E]) reindex(want int, hash func(K) uint64) {
	if want < t.live {
		panic("ordmap: reindex below live count")
	}
	if t.tombstones() > 0 {
		n := 0
		for i := range t.entries {
			if t.entries[i].state == tombstone {
				continue
			}
			t.entries[n] = t.entries[i]
			n++
		}
		clear(t.entries[n:])
		t.entries = t.entries[:n]
	}
	if hash != nil {
		for i := range t.entries {
			t.entries[i].hash = hash(t.entries[i].key)
		}
	}
	t.buildIndex(ibBitFor(want))
}
