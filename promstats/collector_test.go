// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package promstats_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/aristanetworks/ordmap"
	"github.com/aristanetworks/ordmap/promstats"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	m := ordmap.NewInteger[int, int]()
	for i := 0; i < 17; i++ {
		m.Set(i, i)
	}
	for i := 0; i < 15; i++ {
		m.Delete(i)
	}
	c := promstats.NewCollector("test", m)

	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(`
# HELP ordmap_map_entries Number of live entries in the map
# TYPE ordmap_map_entries gauge
ordmap_map_entries{name="test"} 2
# HELP ordmap_map_tombstones Number of deleted entries still held by the table arena
# TYPE ordmap_map_tombstones gauge
ordmap_map_tombstones{name="test"} 15
# HELP ordmap_map_index_slots Number of slots in the table index, zero while the map uses the array layout
# TYPE ordmap_map_index_slots gauge
ordmap_map_index_slots{name="test"} 32
# HELP ordmap_map_layout Layout currently in use; the series for the active layout is 1
# TYPE ordmap_map_layout gauge
ordmap_map_layout{layout="ArrayLayout",name="test"} 0
ordmap_map_layout{layout="TableLayout",name="test"} 1
# HELP ordmap_map_layout_transitions_total Number of times the map changed layout
# TYPE ordmap_map_layout_transitions_total counter
ordmap_map_layout_transitions_total{direction="Demote",name="test"} 0
ordmap_map_layout_transitions_total{direction="Promote",name="test"} 1
`), "ordmap_map_entries", "ordmap_map_tombstones", "ordmap_map_index_slots",
		"ordmap_map_layout", "ordmap_map_layout_transitions_total"))

	m.Compact()
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(`
# HELP ordmap_map_index_slots Number of slots in the table index, zero while the map uses the array layout
# TYPE ordmap_map_index_slots gauge
ordmap_map_index_slots{name="test"} 0
# HELP ordmap_map_layout_transitions_total Number of times the map changed layout
# TYPE ordmap_map_layout_transitions_total counter
ordmap_map_layout_transitions_total{direction="Demote",name="test"} 1
ordmap_map_layout_transitions_total{direction="Promote",name="test"} 1
# HELP ordmap_map_compactions_total Number of calls to Compact
# TYPE ordmap_map_compactions_total counter
ordmap_map_compactions_total{name="test"} 1
`), "ordmap_map_index_slots", "ordmap_map_layout_transitions_total",
		"ordmap_map_compactions_total"))
}

func TestCollectorRegistry(t *testing.T) {
	var mu sync.Mutex
	m := ordmap.NewString[string]()
	source := promstats.SourceFunc(func() ordmap.Stats {
		mu.Lock()
		defer mu.Unlock()
		return m.Stats()
	})

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(promstats.NewCollector("a", source)))
	require.NoError(t, reg.Register(promstats.NewCollector("b", source)))

	mu.Lock()
	m.Set("k", "v")
	mu.Unlock()

	// 7 metric families; layout, transitions and index rebuilds carry
	// two series per map.
	require.Equal(t, 2*10, testutil.CollectAndCount(reg))
}
