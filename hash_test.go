// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"bytes"
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXXHashKeys(t *testing.T) {
	seed1, seed2 := maphash.MakeSeed(), maphash.MakeSeed()
	require.Equal(t, XXHashString(seed1, "abc"), XXHashString(seed2, "abc"))
	require.Equal(t, XXHashString(seed1, "abc"), XXHashBytes(seed2, []byte("abc")))

	m := New[[]byte, int](bytes.Equal, XXHashBytes)
	for i := 0; i < 40; i++ {
		m.Set([]byte{byte(i), 'k'}, i)
	}
	m.Delete([]byte{0, 'k'})
	m.Compact()
	require.Equal(t, 39, m.Len())
	v, ok := m.Get([]byte{7, 'k'})
	require.True(t, ok)
	require.Equal(t, 7, v)
}

func TestIntegerHash(t *testing.T) {
	seed := maphash.MakeSeed()
	require.Equal(t, IntegerHash(seed, int8(-1)), IntegerHash(seed, int64(-1)))
	require.NotEqual(t, IntegerHash(seed, uint16(1)), IntegerHash(seed, uint16(2)))

	m := NewInteger[uint32, string]()
	m.Set(3, "three")
	v, ok := m.Get(3)
	require.True(t, ok)
	require.Equal(t, "three", v)
}

func TestWithSeed(t *testing.T) {
	seed := maphash.MakeSeed()
	m := NewString[int](WithSeed(seed))
	m.Set("a", 1)
	m.Delete("a")
	require.Equal(t, seed, m.seed)

	m2 := NewString[int]()
	m2.Set("a", 1)
	before := m2.seed
	m2.Delete("a")
	require.NotEqual(t, before, m2.seed)
}
