// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ths

// sorter holds the state of a single sort call. It is not safe for
// concurrent use and is discarded when the call returns.
type sorter[E any] struct {
	x   []E
	cmp func(a, b E) int

	// buf backs the buffered merges of stableSort.
	buf []E
}

func newSorter[E any](x []E, cmp func(a, b E) int) *sorter[E] {
	return &sorter[E]{x: x, cmp: cmp}
}

func (s *sorter[E]) less(i, j int) bool {
	return s.cmp(s.x[i], s.x[j]) < 0
}

func (s *sorter[E]) swap(i, j int) {
	s.x[i], s.x[j] = s.x[j], s.x[i]
}

// reverse reverses x[a:b].
func (s *sorter[E]) reverse(a, b int) {
	for b--; a < b; a, b = a+1, b-1 {
		s.swap(a, b)
	}
}

// multiSwap swaps x[a:a+n] with x[b:b+n], front to back.
func (s *sorter[E]) multiSwap(a, b, n int) {
	for i := 0; i < n; i++ {
		s.swap(a+i, b+i)
	}
}

// multiSwapBackward swaps x[a:a+n] with x[b:b+n], back to front.
func (s *sorter[E]) multiSwapBackward(a, b, n int) {
	for i := n - 1; i >= 0; i-- {
		s.swap(a+i, b+i)
	}
}

// insertTo moves x[from] down to index to, shifting x[to:from] up by one.
func (s *sorter[E]) insertTo(from, to int) {
	v := s.x[from]
	copy(s.x[to+1:from+1], s.x[to:from])
	s.x[to] = v
}

// insertToBackward moves x[from] up to index to, shifting x[from+1:to+1]
// down by one.
func (s *sorter[E]) insertToBackward(from, to int) {
	v := s.x[from]
	copy(s.x[from:to], s.x[from+1:to+1])
	s.x[to] = v
}

// rotate exchanges the blocks x[a:m] and x[m:b], keeping the order within
// each block. It swaps the shorter block into place until one block has a
// single element left, which is then shifted across the other.
func (s *sorter[E]) rotate(a, m, b int) {
	for b-m > 1 && m-a > 1 {
		if b-m < m-a {
			s.multiSwap(a, m, b-m)
			a += b - m
		} else {
			s.multiSwapBackward(a, b-(m-a), m-a)
			b -= m - a
		}
	}

	if b-m == 1 {
		s.insertTo(m, a)
	} else if m-a == 1 {
		s.insertToBackward(a, b-1)
	}
}

// binarySearch returns the position in the sorted range x[a:b] at which v
// would be inserted. With left set that is before any elements equal to v,
// otherwise after them.
func (s *sorter[E]) binarySearch(a, b int, v E, left bool) int {
	for a < b {
		m := int(uint(a+b) >> 1) // avoid overflow when computing m
		c := s.cmp(v, s.x[m])
		if c < 0 || (left && c == 0) {
			b = m
		} else {
			a = m + 1
		}
	}
	return a
}
