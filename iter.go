// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import "iter"

// Iterator is instantiated by a call Iter(). It walks a copy of the
// Map's entries taken when Iter was called.
type Iterator[K, E any] struct {
	pairs []KeyElem[K, E]
	i     int
	key   K
	elem  E
}

// Key returns the key at the iterator's current position. This is
// only valid after a call to Next() that returns true.
func (it *Iterator[K, E]) Key() K {
	return it.key
}

// Elem returns the element at the iterator's current position. This
// is only valid after a call to Next() that returns true.
func (it *Iterator[K, E]) Elem() E {
	return it.elem
}

// Next moves the iterator to the next element. Next returns false
// when the iterator is complete.
func (it *Iterator[K, E]) Next() bool {
	if it.i >= len(it.pairs) {
		var (
			zeroK K
			zeroE E
		)
		it.key = zeroK
		it.elem = zeroE
		return false
	}
	it.key = it.pairs[it.i].Key
	it.elem = it.pairs[it.i].Elem
	it.i++
	return true
}

// Iter instantiates an Iterator to explore the elements of the Map in
// insertion order. Changes made to m after Iter returns are not seen
// by the Iterator.
func (m *Map[K, E]) Iter() *Iterator[K, E] {
	return &Iterator[K, E]{pairs: m.Pairs()}
}

// Pairs returns the key-elem pairs of m in insertion order.
func (m *Map[K, E]) Pairs() []KeyElem[K, E] {
	if m.Len() == 0 {
		return []KeyElem[K, E]{}
	}
	pairs := make([]KeyElem[K, E], 0, m.Len())
	m.lay.each(func(e *entry[K, E]) bool {
		pairs = append(pairs, KeyElem[K, E]{Key: e.key, Elem: e.elem})
		return true
	})
	return pairs
}

// All returns an iterator over key-value pairs from m, in insertion
// order, as they were when All was called.
func (m *Map[K, E]) All() iter.Seq2[K, E] {
	pairs := m.Pairs()
	return func(yield func(K, E) bool) {
		for _, p := range pairs {
			if !yield(p.Key, p.Elem) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in m, in insertion order, as they
// were when Keys was called.
func (m *Map[K, E]) Keys() iter.Seq[K] {
	keys := make([]K, 0, m.Len())
	if m.Len() > 0 {
		m.lay.each(func(e *entry[K, E]) bool {
			keys = append(keys, e.key)
			return true
		})
	}
	return func(yield func(K) bool) {
		for _, k := range keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over values in m, in insertion order, as
// they were when Values was called.
func (m *Map[K, E]) Values() iter.Seq[E] {
	elems := make([]E, 0, m.Len())
	if m.Len() > 0 {
		m.lay.each(func(e *entry[K, E]) bool {
			elems = append(elems, e.elem)
			return true
		})
	}
	return func(yield func(E) bool) {
		for _, e := range elems {
			if !yield(e) {
				return
			}
		}
	}
}
