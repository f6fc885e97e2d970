// Modifications copyright (c) Arista Networks, Inc. 2022
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"fmt"
	"strings"
)

// String converts m to a string representation using K's and E's
// String functions. Entries appear in insertion order.
func String[K fmt.Stringer, E fmt.Stringer](m *Map[K, E]) string {
	return StringFunc(m,
		func(key K) string { return key.String() },
		func(elem E) string { return elem.String() },
	)
}

// String converts m to a string representation, formatting keys and
// elems with the %v verb.
func (m *Map[K, E]) String() string {
	return StringFunc(m,
		func(key K) string { return fmt.Sprint(key) },
		func(elem E) string { return fmt.Sprint(elem) },
	)
}

type strKE struct {
	k string
	e string
}

// StringFunc converts m to a string representation with the help of
// strK and strE functions to stringify m's keys and elems.
func StringFunc[K any, E any](m *Map[K, E],
	strK func(key K) string,
	strE func(elem E) string) string {
	if m == nil || m.Len() == 0 {
		return "ordmap.Map[]"
	}
	strs := make([]strKE, m.Len())
	s := 0
	i := 0
	for it := m.Iter(); it.Next(); {
		ke := &strs[i]
		ke.k = strK(it.Key())
		ke.e = strE(it.Elem())
		s += len(ke.k) + len(ke.e)
		i++
	}

	var b strings.Builder
	b.Grow(len("ordmap.Map[]") + // space for header and footer
		len(strs)*2 - 1 + // space for delimiters
		s) // space for keys and elems
	b.WriteString("ordmap.Map[")
	for i, ke := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ke.k)
		b.WriteByte(':')
		b.WriteString(ke.e)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal returns true if the same set of keys and elems are in m1 and
// m2, regardless of order. Elements are compared using ==.
func Equal[K any, E comparable](m1, m2 *Map[K, E]) bool {
	return EqualFunc(m1, m2, func(a, b E) bool { return a == b })
}

// EqualFunc returns true if the same set of keys and elems are in m1
// and m2, regardless of order. Elements are compared using eq.
func EqualFunc[K, E any](m1, m2 *Map[K, E], eq func(E, E) bool) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	for it := m1.Iter(); it.Next(); {
		e2, ok := m2.Get(it.Key())
		if !ok || !eq(it.Elem(), e2) {
			return false
		}
	}
	return true
}

// EqualOrdered returns true if m1 and m2 hold equal keys with equal
// elems in the same order. Keys are compared with m1's equal function.
func EqualOrdered[K any, E comparable](m1, m2 *Map[K, E]) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	p1, p2 := m1.Pairs(), m2.Pairs()
	for i := range p1 {
		if !m1.equal(p1[i].Key, p2[i].Key) || p1[i].Elem != p2[i].Elem {
			return false
		}
	}
	return true
}
