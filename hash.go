// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Ready made equal and hash functions for common key types.

// Comparable is an equal function for any comparable key type.
func Comparable[K comparable](a, b K) bool {
	return a == b
}

// IntegerHash hashes an integer key with maphash.
func IntegerHash[T constraints.Integer](seed maphash.Seed, v T) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return maphash.Bytes(seed, buf[:])
}

// XXHashString hashes s with xxhash. The seed is ignored, so hashes,
// and therefore index placement, are the same in every process.
func XXHashString(_ maphash.Seed, s string) uint64 {
	return xxhash.Sum64String(s)
}

// XXHashBytes hashes b with xxhash. The seed is ignored.
func XXHashBytes(_ maphash.Seed, b []byte) uint64 {
	return xxhash.Sum64(b)
}

// NewInteger instantiates a Map keyed by integers.
func NewInteger[K constraints.Integer, E any](opts ...Option) *Map[K, E] {
	return NewWithOptions[K, E](Comparable[K], IntegerHash[K], opts...)
}

// NewString instantiates a Map keyed by strings, hashed with
// [maphash.String].
func NewString[E any](opts ...Option) *Map[string, E] {
	return NewWithOptions[string, E](Comparable[string], maphash.String, opts...)
}
