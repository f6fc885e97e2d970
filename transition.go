// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

// promote turns an array that has outgrown the threshold into a table
// holding the same entries in the same order. The index is sized for
// the live count; capacity only reserves arena room.
func promote[K, E any](a *arrayLayout[K, E], capacity int) *tableLayout[K, E] {
	return newTableLayout(a.entries, capacity)
}

// demote copies the live entries of t into a fresh array and drops the
// index. hash, when non-nil, recomputes each entry's cached hash.
func demote[K, E any](t *tableLayout[K, E], hash func(K) uint64) *arrayLayout[K, E] {
	a := newArrayLayout[K, E](t.live)
	t.each(func(e *entry[K, E]) bool {
		ne := *e
		if hash != nil {
			ne.hash = hash(ne.key)
		}
		a.append(ne)
		return true
	})
	return a
}
