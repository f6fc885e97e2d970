// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIbBitFor(t *testing.T) {
	for _, tc := range []struct {
		count int
		ibBit uint8
	}{
		{0, minIbBit},
		{1, minIbBit},
		{3, 2},
		{4, 3},
		{6, 3},
		{7, 4},
		{12, 4},
		{13, 5},
		{17, 5},
		{24, 5},
		{25, 6},
		{200, 9},
	} {
		require.Equal(t, tc.ibBit, ibBitFor(tc.count), "count=%d", tc.count)
		require.False(t, overLoadFactor(tc.count, 1<<tc.ibBit))
		if tc.ibBit > minIbBit {
			require.True(t, overLoadFactor(tc.count, 1<<(tc.ibBit-1)))
		}
	}
}

func TestMakeIndexPanicsOnOddSize(t *testing.T) {
	require.Panics(t, func() { makeIndex(12) })
	require.Len(t, makeIndex(8), 8)
}

func keyEq(a, b uint64) bool { return a == b }

// newTestTable returns a table whose entries hash to the given values.
// The key of each entry is its position.
func newTestTable(hashes ...uint64) *tableLayout[uint64, uint64] {
	entries := make([]entry[uint64, uint64], len(hashes))
	for i, h := range hashes {
		entries[i] = entry[uint64, uint64]{key: uint64(i), elem: uint64(i), hash: h}
	}
	return newTableLayout(entries, 0)
}

func TestTableDeleteWrapsAround(t *testing.T) {
	// Width 3 (8 slots) for 6 entries. Hashes 6 and 7 fill the last two
	// slots, so the probe runs that start there wrap to slots 0 and 1.
	tl := newTestTable(6, 7, 6, 7, 0, 1)
	require.Equal(t, uint8(3), tl.ibBit)
	require.NoError(t, tl.validate(false, 0))

	for _, k := range []uint64{0, 3, 4} {
		require.True(t, tl.delete(tl.entries[k].hash, k, keyEq))
		require.NoError(t, tl.validate(false, 0), "after deleting %d", k)
	}
	for k := uint64(0); k < 6; k++ {
		e := tl.find(tl.entries[k].hash, k, keyEq)
		if k == 0 || k == 3 || k == 4 {
			require.Nil(t, e, "key %d", k)
			continue
		}
		require.NotNil(t, e, "key %d", k)
		require.Equal(t, k, e.elem)
	}
	require.Equal(t, 3, tl.tombstones())
	require.False(t, tl.delete(6, 0, keyEq))
}

func TestTableReindexKeepsOrder(t *testing.T) {
	tl := newTestTable(1, 1, 1, 2, 2, 3, 9, 9)
	for _, k := range []uint64{1, 4, 6} {
		require.True(t, tl.delete(tl.entries[k].hash, k, keyEq))
	}
	tl.reindex(tl.live, nil)
	require.NoError(t, tl.validate(false, 0))
	require.Equal(t, 0, tl.tombstones())
	var keys []uint64
	tl.each(func(e *entry[uint64, uint64]) bool {
		keys = append(keys, e.key)
		return true
	})
	require.Equal(t, []uint64{0, 2, 3, 5, 7}, keys)
	require.Panics(t, func() { tl.reindex(tl.live-1, nil) })
}

func TestDemoteDropsTombstones(t *testing.T) {
	tl := newTestTable(5, 4, 3, 2, 1)
	require.True(t, tl.delete(3, 2, keyEq))
	a := demote(tl, func(k uint64) uint64 { return k * 10 })
	require.Equal(t, 4, a.len())
	var keys, hashes []uint64
	a.each(func(e *entry[uint64, uint64]) bool {
		keys = append(keys, e.key)
		hashes = append(hashes, e.hash)
		return true
	})
	require.Equal(t, []uint64{0, 1, 3, 4}, keys)
	require.Equal(t, []uint64{0, 10, 30, 40}, hashes)
}
