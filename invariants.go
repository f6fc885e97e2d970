// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import "fmt"

// checkInvariants panics if m's layout is inconsistent. It only runs in
// builds with the ordmap_debug tag.
func (m *Map[K, E]) checkInvariants(compacted bool) {
	if !debugChecks {
		return
	}
	if err := m.validate(compacted); err != nil {
		panic("ordmap: " + err.Error())
	}
}

// validate checks the layout invariants of m. compacted adds the checks
// that hold right after Compact.
func (m *Map[K, E]) validate(compacted bool) error {
	switch l := m.lay.(type) {
	case *arrayLayout[K, E]:
		if l.len() > m.threshold {
			return fmt.Errorf("array layout holds %d entries, threshold is %d",
				l.len(), m.threshold)
		}
		for i := range l.entries {
			if l.entries[i].state != live {
				return fmt.Errorf("array layout has dead entry at %d", i)
			}
		}
		return nil
	case *tableLayout[K, E]:
		return l.validate(compacted, m.threshold)
	}
	return fmt.Errorf("unknown layout %T", m.lay)
}

func (t *tableLayout[K, E]) validate(compacted bool, threshold int) error {
	if t.ibBit < minIbBit || t.ibBit > maxIbBit {
		return fmt.Errorf("index width %d out of range", t.ibBit)
	}
	if len(t.index) != 1<<t.ibBit {
		return fmt.Errorf("index has %d slots, width %d wants %d",
			len(t.index), t.ibBit, 1<<t.ibBit)
	}
	if overLoadFactor(t.live, len(t.index)) {
		return fmt.Errorf("index of %d slots is too small for %d live entries",
			len(t.index), t.live)
	}
	alive := 0
	for i := range t.entries {
		if t.entries[i].state == live {
			alive++
		}
	}
	if alive != t.live {
		return fmt.Errorf("arena has %d live entries, count is %d", alive, t.live)
	}
	used := 0
	for _, p := range t.index {
		if p == emptySlot {
			continue
		}
		used++
		if int(p) >= len(t.entries) || t.entries[p].state != live {
			return fmt.Errorf("index points at %d, which is not a live entry", p)
		}
	}
	if used != t.live {
		return fmt.Errorf("index holds %d positions, count is %d", used, t.live)
	}
	mask := t.mask()
	for pos := range t.entries {
		if t.entries[pos].state != live {
			continue
		}
		i := t.entries[pos].hash & mask
		for t.index[i] != int32(pos) {
			if t.index[i] == emptySlot {
				return fmt.Errorf("entry %d is unreachable from its home slot", pos)
			}
			i = (i + 1) & mask
		}
	}
	if compacted {
		if t.live <= threshold {
			return fmt.Errorf("table layout holds %d entries after compaction, threshold is %d",
				t.live, threshold)
		}
		if t.tombstones() != 0 {
			return fmt.Errorf("%d tombstones left after compaction", t.tombstones())
		}
	}
	return nil
}
