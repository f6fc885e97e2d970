// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"golang.org/x/exp/slices"
)

// arrayLayout holds live entries only, in insertion order.
type arrayLayout[K, E any] struct {
	entries []entry[K, E]
}

func newArrayLayout[K, E any](capacity int) *arrayLayout[K, E] {
	if capacity <= 0 {
		return &arrayLayout[K, E]{}
	}
	return &arrayLayout[K, E]{entries: make([]entry[K, E], 0, capacity)}
}

func (a *arrayLayout[K, E]) len() int {
	return len(a.entries)
}

func (a *arrayLayout[K, E]) index(hash uint64, key K, equal func(K, K) bool) int {
	for i := range a.entries {
		if e := &a.entries[i]; e.hash == hash && equal(key, e.key) {
			return i
		}
	}
	return -1
}

func (a *arrayLayout[K, E]) find(hash uint64, key K, equal func(K, K) bool) *entry[K, E] {
	if i := a.index(hash, key, equal); i >= 0 {
		return &a.entries[i]
	}
	return nil
}

func (a *arrayLayout[K, E]) each(fn func(e *entry[K, E]) bool) {
	for i := range a.entries {
		if !fn(&a.entries[i]) {
			return
		}
	}
}

func (a *arrayLayout[K, E]) append(e entry[K, E]) {
	a.entries = append(a.entries, e)
}

func (a *arrayLayout[K, E]) delete(hash uint64, key K, equal func(K, K) bool) bool {
	i := a.index(hash, key, equal)
	if i < 0 {
		return false
	}
	n := len(a.entries)
	a.entries = slices.Delete(a.entries, i, i+1)
	// Clear the vacated slot in case key or elem hold pointers.
	a.entries[:n][n-1] = entry[K, E]{}
	return true
}

// rehash recomputes the cached hash of every entry.
func (a *arrayLayout[K, E]) rehash(hash func(K) uint64) {
	for i := range a.entries {
		a.entries[i].hash = hash(a.entries[i].key)
	}
}
