// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap provides the Map type, an insertion-ordered hash map
// that switches between two physical layouts depending on its size.
// Like gomap, users provide an equal and a hash function.
//
// The following requirements are the user's responsibility to follow:
//   - equal(a, b) => hash(a) == hash(b)
//   - equal(a, a) must be true for all values of a. Be careful around NaN
//     float values.
//   - If a key in a `Map` contains references -- such as pointers, maps,
//     or slices -- modifying the referenced data in a way that effects
//     the result of the equal or hash functions will result in undefined
//     behavior.
//   - A Map is not safe for concurrent use.
package ordmap

// A map holds its entries in one of two layouts.
//
// While it holds at most SmallThreshold live entries it is an array
// layout: a slice of entries in insertion order, searched linearly.
// Deleting shifts the tail down, so the array never holds dead entries.
//
// Once a Set pushes the count past the threshold, the map is promoted
// to a table layout. The table keeps the same ordered slice of entries
// (the arena) and adds an index of 1<<ibBit slots, each holding -1 or
// a position in the arena. The index uses linear probing on the low
// bits of the hash. Deleting from a table marks the arena entry as a
// tombstone and removes its index slot with backward-shift deletion,
// so the index only ever points at live entries.
//
// A table never turns back into an array on its own. Compact does
// that: it counts the live entries first and, if they fit under the
// threshold, demotes the table. Only tables that stay above the
// threshold are reindexed in place, and the index width is always
// derived from the live count at that moment.
//
// Picking loadFactor: open addressing degrades quickly past 0.8. 0.75
// keeps probe sequences short and leaves 17 live entries, the smallest
// table, in a 32 slot index.

import (
	"hash/maphash"
)

// SmallThreshold is the default maximum number of live entries a Map
// holds in its array layout.
const SmallThreshold = 16

const (
	// Maximum load of the index that triggers growth is 0.75.
	// Represent as loadFactorNum/loadFactorDen, to allow integer math.
	loadFactorNum = 3
	loadFactorDen = 4

	// Smallest and largest index widths. Arena positions are stored as
	// int32, so the index never needs more than 1<<31 slots.
	minIbBit = 2
	maxIbBit = 31

	// flags
	hashWriting = 4 // a goroutine is writing to the map
)

// Layout identifies the physical representation a Map is using.
type Layout uint8

const (
	// ArrayLayout is the small, linearly scanned representation.
	ArrayLayout Layout = iota
	// TableLayout is the indexed representation.
	TableLayout
)

func (l Layout) String() string {
	switch l {
	case ArrayLayout:
		return "ArrayLayout"
	case TableLayout:
		return "TableLayout"
	}
	return "Layout(?)"
}

type entryState uint8

const (
	live entryState = iota
	tombstone
)

type entry[K, E any] struct {
	key   K
	elem  E
	hash  uint64
	state entryState
}

// layout is implemented by *arrayLayout and *tableLayout only. Code
// that needs to know which one it holds uses a type switch.
type layout[K, E any] interface {
	// len returns the number of live entries.
	len() int
	// find returns the live entry for key, or nil.
	find(hash uint64, key K, equal func(K, K) bool) *entry[K, E]
	// each calls fn on live entries in insertion order until fn
	// returns false.
	each(fn func(e *entry[K, E]) bool)
}

// Map implements an insertion-ordered hashmap.
type Map[K, E any] struct {
	lay   layout[K, E]
	flags uint32

	// threshold is the largest live count kept in the array layout.
	threshold int
	// capacity is the size hint given at construction.
	capacity  int
	seed      maphash.Seed
	fixedSeed bool

	hash  func(maphash.Seed, K) uint64
	equal func(K, K) bool

	stats Stats
}

// KeyElem contains a Key and Elem.
type KeyElem[K, E any] struct {
	Key  K
	Elem E
}

// New instantiates a new Map initialized with any KeyElems passed.
// The equal func must return true for two values of K that are equal
// and false otherwise. The hash func should return a uniformly
// distributed hash value. If equal(a, b) then hash(a) == hash(b). The
// hash function is passed a [hash/maphash.Seed], this is meant to be
// used with functions and types in the [hash/maphash] package, though
// can be ignored.
func New[K, E any](
	equal func(a, b K) bool,
	hash func(maphash.Seed, K) uint64,
	kes ...KeyElem[K, E]) *Map[K, E] {

	m := NewWithOptions[K, E](equal, hash, WithCapacity(len(kes)))
	for _, ke := range kes {
		m.Set(ke.Key, ke.Elem)
	}
	return m
}

// NewHint instantiates a new Map with a hint as to how many elements
// will be inserted. See [New] for discussion of the equal and hash
// arguments.
func NewHint[K, E any](
	hint int,
	equal func(a, b K) bool,
	hash func(maphash.Seed, K) uint64) *Map[K, E] {

	return NewWithOptions[K, E](equal, hash, WithCapacity(hint))
}

// NewWithOptions instantiates a new, empty Map configured by opts. See
// [New] for discussion of the equal and hash arguments.
func NewWithOptions[K, E any](
	equal func(a, b K) bool,
	hash func(maphash.Seed, K) uint64,
	opts ...Option) *Map[K, E] {

	cfg := config{threshold: SmallThreshold}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.threshold < 1 {
		panic("small threshold must be at least 1")
	}
	m := &Map[K, E]{
		threshold: cfg.threshold,
		capacity:  cfg.capacity,
		hash:      hash,
		equal:     equal,
	}
	if cfg.seed != nil {
		m.seed = *cfg.seed
		m.fixedSeed = true
	} else {
		m.seed = maphash.MakeSeed()
	}
	m.lay = newArrayLayout[K, E](min(cfg.capacity, cfg.threshold+1))
	return m
}

// Len returns the count of live elements in m.
func (m *Map[K, E]) Len() int {
	if m == nil || m.lay == nil {
		return 0
	}
	return m.lay.len()
}

// Layout reports which representation m currently uses.
func (m *Map[K, E]) Layout() Layout {
	if m == nil {
		return ArrayLayout
	}
	if _, ok := m.lay.(*tableLayout[K, E]); ok {
		return TableLayout
	}
	return ArrayLayout
}

// Get returns the element associated with key and true if that key is
// in the Map, otherwise it returns the zero value of E and false.
func (m *Map[K, E]) Get(key K) (E, bool) {
	if e := m.lookup(key); e != nil {
		return e.elem, true
	}
	var zeroE E
	return zeroE, false
}

// Has reports whether key is in m.
func (m *Map[K, E]) Has(key K) bool {
	return m.lookup(key) != nil
}

func (m *Map[K, E]) lookup(key K) *entry[K, E] {
	if m.Len() == 0 {
		return nil
	}
	return m.lay.find(m.hash(m.seed, key), key, m.equal)
}

// Set associates key with elem in m. Setting a key already in m keeps
// its position in iteration order; a new key goes last.
func (m *Map[K, E]) Set(key K, elem E) {
	if m == nil {
		// We have to panic here rather than initialize an empty map
		// because we need the user to pass in hash and equal
		// functions
		panic("Set called on nil map")
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	hash := m.hash(m.seed, key)
	// Set hashWriting after calling m.hash, since m.hash may panic,
	// in which case we have not actually done a write.
	m.flags ^= hashWriting

	if e := m.lay.find(hash, key, m.equal); e != nil {
		e.key = key
		e.elem = elem
	} else {
		m.insert(hash, key, elem)
	}

	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
	m.checkInvariants(false)
}

// Update calls fn with the element currently associated with key, or
// the zero value of E if there is none, and stores the result under
// key. fn must not modify m.
func (m *Map[K, E]) Update(key K, fn func(cur E) E) {
	if m == nil {
		panic("Update called on nil map")
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	hash := m.hash(m.seed, key)
	m.flags ^= hashWriting

	if e := m.lay.find(hash, key, m.equal); e != nil {
		e.elem = fn(e.elem)
	} else {
		var zeroE E
		m.insert(hash, key, fn(zeroE))
	}

	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
	m.checkInvariants(false)
}

// insert adds a key known to be absent from m.
func (m *Map[K, E]) insert(hash uint64, key K, elem E) {
	switch l := m.lay.(type) {
	case *arrayLayout[K, E]:
		l.append(entry[K, E]{key: key, elem: elem, hash: hash})
		if l.len() > m.threshold {
			m.lay = promote(l, m.capacity)
			m.stats.Promotions++
		}
	case *tableLayout[K, E]:
		switch l.insert(hash, key, elem) {
		case indexGrown:
			m.stats.Grows++
		case indexRebuilt:
			m.stats.Reindexes++
		}
	}
}

// Delete removes key and it's associated value from the map. It
// reports whether key was present.
func (m *Map[K, E]) Delete(key K) bool {
	if m.Len() == 0 {
		return false
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}

	hash := m.hash(m.seed, key)

	// Set hashWriting after calling m.hash, since m.hash may panic,
	// in which case we have not actually done a write (delete).
	m.flags ^= hashWriting

	var deleted bool
	switch l := m.lay.(type) {
	case *arrayLayout[K, E]:
		deleted = l.delete(hash, key, m.equal)
	case *tableLayout[K, E]:
		deleted = l.delete(hash, key, m.equal)
	}
	// Reset the hash seed to make it more difficult for attackers to
	// repeatedly trigger hash collisions. See issue 25237. Tombstones
	// keep stale hashes, but they are never looked up again.
	if deleted && m.lay.len() == 0 && !m.fixedSeed {
		m.seed = maphash.MakeSeed()
	}

	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
	m.checkInvariants(false)
	return deleted
}

// Clear deletes all keys from m and returns it to an empty array
// layout.
func (m *Map[K, E]) Clear() {
	if m == nil || m.lay == nil {
		return
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	m.flags ^= hashWriting

	m.lay = newArrayLayout[K, E](min(m.capacity, m.threshold+1))
	if !m.fixedSeed {
		m.seed = maphash.MakeSeed()
	}

	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
}
