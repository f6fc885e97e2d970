// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package promstats exports the shape and layout counters of ordmap
// maps as Prometheus metrics.
package promstats

import (
	"github.com/aristanetworks/ordmap"

	"github.com/prometheus/client_golang/prometheus"
)

// Source is anything that can report ordmap statistics, typically an
// *ordmap.Map.
type Source interface {
	Stats() ordmap.Stats
}

// SourceFunc adapts a function to Source. Maps are not safe for
// concurrent use, and Collect runs on the scraping goroutine, so a map
// that is written concurrently should be read through a SourceFunc
// that takes the caller's lock.
type SourceFunc func() ordmap.Stats

// Stats calls f.
func (f SourceFunc) Stats() ordmap.Stats {
	return f()
}

// Collector is a prometheus.Collector reporting the statistics of a
// single map. Every series carries the map's name as a constant
// "name" label, so collectors for several maps can share a registry.
type Collector struct {
	source Source

	entries       *prometheus.Desc
	tombstones    *prometheus.Desc
	indexSlots    *prometheus.Desc
	layout        *prometheus.Desc
	transitions   *prometheus.Desc
	indexRebuilds *prometheus.Desc
	compactions   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector for source.
func NewCollector(name string, source Source) *Collector {
	labels := prometheus.Labels{"name": name}
	desc := func(metric, help string, variableLabels ...string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName("ordmap", "map", metric),
			help, variableLabels, labels)
	}
	return &Collector{
		source: source,

		entries: desc("entries",
			"Number of live entries in the map"),
		tombstones: desc("tombstones",
			"Number of deleted entries still held by the table arena"),
		indexSlots: desc("index_slots",
			"Number of slots in the table index, zero while the map uses the array layout"),
		layout: desc("layout",
			"Layout currently in use; the series for the active layout is 1",
			"layout"),
		transitions: desc("layout_transitions_total",
			"Number of times the map changed layout",
			"direction"),
		indexRebuilds: desc("index_rebuilds_total",
			"Number of times the table index was rebuilt",
			"reason"),
		compactions: desc("compactions_total",
			"Number of calls to Compact"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.tombstones
	ch <- c.indexSlots
	ch <- c.layout
	ch <- c.transitions
	ch <- c.indexRebuilds
	ch <- c.compactions
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue,
		float64(s.Len))
	ch <- prometheus.MustNewConstMetric(c.tombstones, prometheus.GaugeValue,
		float64(s.Tombstones))
	ch <- prometheus.MustNewConstMetric(c.indexSlots, prometheus.GaugeValue,
		float64(s.IndexSlots))
	for _, l := range []ordmap.Layout{ordmap.ArrayLayout, ordmap.TableLayout} {
		var v float64
		if s.Layout == l {
			v = 1
		}
		ch <- prometheus.MustNewConstMetric(c.layout, prometheus.GaugeValue,
			v, l.String())
	}
	ch <- prometheus.MustNewConstMetric(c.transitions, prometheus.CounterValue,
		float64(s.Promotions), "Promote")
	ch <- prometheus.MustNewConstMetric(c.transitions, prometheus.CounterValue,
		float64(s.Demotions), "Demote")
	ch <- prometheus.MustNewConstMetric(c.indexRebuilds, prometheus.CounterValue,
		float64(s.Grows), "Grow")
	ch <- prometheus.MustNewConstMetric(c.indexRebuilds, prometheus.CounterValue,
		float64(s.Reindexes), "Reindex")
	ch <- prometheus.MustNewConstMetric(c.compactions, prometheus.CounterValue,
		float64(s.Compactions))
}
