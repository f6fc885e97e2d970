// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

// emptySlot marks an index slot that points at no entry.
const emptySlot int32 = -1

// indexChange reports what an insert did to a table's index.
type indexChange uint8

const (
	indexKept indexChange = iota
	indexGrown
	indexRebuilt
)

// tableLayout is an arena of entries in insertion order, some of which
// may be tombstones, plus an open addressed index of arena positions.
type tableLayout[K, E any] struct {
	entries []entry[K, E]
	index   []int32
	ibBit   uint8
	live    int
}

// overLoadFactor reports whether count items placed in nslots index
// slots is over loadFactor.
func overLoadFactor(count int, nslots int) bool {
	return uint64(count)*loadFactorDen > uint64(nslots)*loadFactorNum
}

// ibBitFor returns the smallest index width whose slot count holds
// count live entries within the load factor.
func ibBitFor(count int) uint8 {
	b := uint8(minIbBit)
	for overLoadFactor(count, 1<<b) {
		b++
		if b > maxIbBit {
			panic("ordmap: too many entries")
		}
	}
	return b
}

func makeIndex(nslots int) []int32 {
	if nslots&(nslots-1) != 0 {
		panic("nslots is not power of 2")
	}
	index := make([]int32, nslots)
	for i := range index {
		index[i] = emptySlot
	}
	return index
}

// newTableLayout builds a table over entries, which must all be live.
// The arena reserves room for capacity entries.
func newTableLayout[K, E any](entries []entry[K, E], capacity int) *tableLayout[K, E] {
	arena := make([]entry[K, E], len(entries), max(capacity, len(entries)))
	copy(arena, entries)
	t := &tableLayout[K, E]{entries: arena, live: len(arena)}
	t.buildIndex(ibBitFor(t.live))
	return t
}

func (t *tableLayout[K, E]) len() int {
	return t.live
}

func (t *tableLayout[K, E]) tombstones() int {
	return len(t.entries) - t.live
}

func (t *tableLayout[K, E]) mask() uint64 {
	return uint64(len(t.index) - 1)
}

// buildIndex replaces the index with one of 1<<ibBit slots filled from
// the live entries of the arena.
func (t *tableLayout[K, E]) buildIndex(ibBit uint8) {
	t.ibBit = ibBit
	t.index = makeIndex(1 << ibBit)
	for i := range t.entries {
		if t.entries[i].state == tombstone {
			continue
		}
		t.place(t.entries[i].hash, int32(i))
	}
}

// place stores pos in the first free slot of hash's probe sequence.
func (t *tableLayout[K, E]) place(hash uint64, pos int32) {
	mask := t.mask()
	for i := hash & mask; ; i = (i + 1) & mask {
		if t.index[i] == emptySlot {
			t.index[i] = pos
			return
		}
	}
}

// probe returns the slot holding key and its arena position. When key
// is absent, pos is emptySlot.
func (t *tableLayout[K, E]) probe(hash uint64, key K, equal func(K, K) bool) (slot uint64, pos int32) {
	mask := t.mask()
	for i := hash & mask; ; i = (i + 1) & mask {
		p := t.index[i]
		if p == emptySlot {
			return i, emptySlot
		}
		if e := &t.entries[p]; e.hash == hash && equal(key, e.key) {
			return i, p
		}
	}
}

func (t *tableLayout[K, E]) find(hash uint64, key K, equal func(K, K) bool) *entry[K, E] {
	if _, pos := t.probe(hash, key, equal); pos != emptySlot {
		return &t.entries[pos]
	}
	return nil
}

func (t *tableLayout[K, E]) each(fn func(e *entry[K, E]) bool) {
	for i := range t.entries {
		if t.entries[i].state == tombstone {
			continue
		}
		if !fn(&t.entries[i]) {
			return
		}
	}
}

// insert appends a key known to be absent from t.
func (t *tableLayout[K, E]) insert(hash uint64, key K, elem E) indexChange {
	change := indexKept
	switch {
	case len(t.entries) == cap(t.entries) && t.tombstones() > t.live:
		// The arena is full and mostly dead. Purge it rather than
		// let append double it.
		t.reindex(t.live+1, nil)
		change = indexRebuilt
	case overLoadFactor(t.live+1, len(t.index)):
		t.buildIndex(ibBitFor(t.live + 1))
		change = indexGrown
	}
	pos := len(t.entries)
	if pos > int(^uint32(0)>>1) {
		panic("ordmap: too many entries")
	}
	t.entries = append(t.entries, entry[K, E]{key: key, elem: elem, hash: hash})
	t.place(hash, int32(pos))
	t.live++
	return change
}

func (t *tableLayout[K, E]) delete(hash uint64, key K, equal func(K, K) bool) bool {
	slot, pos := t.probe(hash, key, equal)
	if pos == emptySlot {
		return false
	}
	t.unplace(slot)
	// Clear key and elem in case they have pointers. The hash stays for
	// debugging; tombstones are never probed.
	e := &t.entries[pos]
	var (
		zeroK K
		zeroE E
	)
	e.key = zeroK
	e.elem = zeroE
	e.state = tombstone
	t.live--
	return true
}

// unplace empties slot and shifts later members of its probe run back
// so that no lookup stops early at the hole.
func (t *tableLayout[K, E]) unplace(slot uint64) {
	mask := t.mask()
	hole := slot
	t.index[hole] = emptySlot
	for i := (hole + 1) & mask; t.index[i] != emptySlot; i = (i + 1) & mask {
		home := t.entries[t.index[i]].hash & mask
		// The entry at i can fill the hole unless its home slot lies
		// cyclically in (hole, i].
		if hole <= i {
			if hole < home && home <= i {
				continue
			}
		} else if home <= i || hole < home {
			continue
		}
		t.index[hole] = t.index[i]
		t.index[i] = emptySlot
		hole = i
	}
}
