// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import "hash/maphash"

// Option configures a Map created by [NewWithOptions].
type Option func(*config)

type config struct {
	capacity  int
	threshold int
	seed      *maphash.Seed
}

// WithCapacity hints how many entries the map will hold. The hint
// reserves room for entries but never changes the layout a map starts
// in or the index width chosen for its live count. If cap is zero or
// negative, the value is ignored.
func WithCapacity(cap int) Option {
	return func(c *config) {
		c.capacity = cap
	}
}

// WithSmallThreshold sets the largest number of live entries kept in
// the array layout. It defaults to [SmallThreshold] and must be at
// least 1.
func WithSmallThreshold(n int) Option {
	return func(c *config) {
		c.threshold = n
	}
}

// WithSeed fixes the seed passed to the hash function. Without it, a
// map picks a random seed and picks a new one whenever it becomes
// empty.
func WithSeed(seed maphash.Seed) Option {
	return func(c *config) {
		c.seed = &seed
	}
}
