// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ths

import "math"

const (
	// Ranges this short are finished by insertion sort.
	insertionThreshold = 16
	// Unbalanced ranges no longer than this are finished by shell sort.
	shellThreshold = 80
	// A partition is unbalanced when one side is at least this many times
	// larger than the other.
	unbalancedRatio = 16
)

// shellGaps are the gaps used by shellSort, largest first.
var shellGaps = [...]int{48, 21, 7, 3, 1}

// medianOf16Network is a sorting network over 16 samples, given as pairs of
// 1-based sample positions to compare and swap. After it runs, sample 8
// holds a median.
var medianOf16Network = [...]int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
	1, 3, 5, 7, 9, 11, 13, 15, 2, 4, 6, 8, 10, 12, 14, 16,
	1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16,
	1, 9, 2, 10, 3, 11, 4, 12, 5, 13, 6, 14, 7, 15, 8, 16,
	6, 11, 7, 10, 4, 13, 14, 15, 8, 12, 2, 3, 5, 9,
	2, 5, 8, 14, 3, 9, 12, 15, 6, 7, 10, 11,
	3, 5, 12, 14, 4, 9, 8, 13,
	7, 9, 11, 13, 4, 6, 8, 10,
	4, 5, 6, 7, 8, 9, 10, 11, 12, 13,
	7, 8, 9, 10,
}

// maxDepth returns the recursion budget for sorting n elements,
// floor(2*log2(n)). Once it is spent the sort falls back to heapsort.
func maxDepth(n int) int {
	if n < 2 {
		return 0
	}
	return int(2 * math.Log2(float64(n)))
}

func (s *sorter[E]) sort(a, b int) {
	if b-a < 2 {
		return
	}
	s.adaptiveQuickSort(a, b, maxDepth(b-a), false)
}

// adaptiveQuickSort sorts x[a:b]. It recurses on one side of each partition
// and loops on the other, spending one unit of depth per recursion.
//
// When unbalanced is set the previous partition was lopsided: the pivot is
// then chosen from 16 samples rather than 3, after the smaller side has been
// split off.
func (s *sorter[E]) adaptiveQuickSort(a, b, depth int, unbalanced bool) {
	for b-a > insertionThreshold {
		if s.sortedRun(a, b) {
			return
		}
		if depth == 0 {
			s.heapSort(a, b)
			return
		}

		p := a
		if !unbalanced {
			s.medianOfThree(a, b)
			p = s.partition(a+1, b, a)
		}

		l, r := p-a, b-(p+1)
		if unbalanced || l == 0 || r == 0 || l/r >= unbalancedRatio || r/l >= unbalancedRatio {
			if b-a <= shellThreshold {
				s.shellSort(a, b)
				return
			}

			s.swap(a, p)
			if l < r {
				s.adaptiveQuickSort(a, p, depth-1, true)
				a = p
			} else {
				s.adaptiveQuickSort(p+1, b, depth-1, true)
				b = p
			}
			s.medianOf16(a, b)
			p = s.partition(a+1, b, a)
		}

		s.swap(a, p)
		depth--
		s.adaptiveQuickSort(p, b, depth, false)
		b = p
	}
	s.baseInsertionSort(a, b)
}

// sortedRun reports whether x[a:b] is a single run. A strictly descending
// run is reversed in place first.
func (s *sorter[E]) sortedRun(a, b int) bool {
	ascending, descending := true, true
	for i := a; i < b-1; i++ {
		if s.less(i+1, i) {
			ascending = false
		} else {
			descending = false
		}
		if !ascending && !descending {
			return false
		}
	}
	if descending && !ascending {
		s.reverse(a, b)
	}
	return true
}

// partition splits x[a:b] around the pivot x[p], which must lie outside
// x[a:b]. It returns j such that x[a:j+1] <= pivot <= x[j+1:b].
func (s *sorter[E]) partition(a, b, p int) int {
	i, j := a-1, b
	for {
		for i++; i < b && s.less(i, p); i++ {
		}
		for j--; j >= a && s.less(p, j); j-- {
		}
		if i >= j {
			return j
		}
		s.swap(i, j)
	}
}

// compareSwap orders the elements at offsets i*gap and j*gap from base.
func (s *sorter[E]) compareSwap(i, j, gap, base int) {
	x, y := base+i*gap, base+j*gap
	if s.less(y, x) {
		s.swap(x, y)
	}
}

// medianOfThree moves the median of the first, middle and last elements of
// x[a:b] to x[a].
func (s *sorter[E]) medianOfThree(a, b int) {
	b--
	m := a + (b-a)/2

	s.compareSwap(a, m, 1, 0)
	if s.less(b, m) {
		s.swap(m, b)
		if s.less(m, a) {
			return
		}
	}
	s.swap(a, m)
}

// medianOf16 moves the median of 16 evenly spaced samples of x[a:b] to x[a].
func (s *sorter[E]) medianOf16(a, b int) {
	gap := (b - 1 - a) / 16
	for i := 0; i < len(medianOf16Network); i += 2 {
		s.compareSwap(medianOf16Network[i], medianOf16Network[i+1], gap, a)
	}
	s.swap(a, a+8*gap)
}

func (s *sorter[E]) siftDown(root, hi, first int) {
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}
		if child+1 < hi && s.less(first+child, first+child+1) {
			child++
		}
		if !s.less(first+root, first+child) {
			return
		}
		s.swap(first+root, first+child)
		root = child
	}
}

func (s *sorter[E]) heapSort(a, b int) {
	first := a
	hi := b - a

	// Build heap with greatest element at top.
	for i := (hi - 1) / 2; i >= 0; i-- {
		s.siftDown(i, hi, first)
	}

	// Pop elements, largest first, into end of data.
	for i := hi - 1; i >= 0; i-- {
		s.swap(first, first+i)
		s.siftDown(0, i, first)
	}
}

func (s *sorter[E]) shellSort(a, b int) {
	x := s.x
	for _, h := range shellGaps {
		for i := a + h; i < b; i++ {
			v := x[i]
			j := i
			for ; j >= a+h && s.cmp(x[j-h], v) > 0; j -= h {
				x[j] = x[j-h]
			}
			x[j] = v
		}
	}
}

// insertionSort sorts x[a:b] by straight insertion.
func (s *sorter[E]) insertionSort(a, b int) {
	x := s.x
	for i := a + 1; i < b; i++ {
		v := x[i]
		j := i - 1
		for ; j >= a && s.cmp(v, x[j]) < 0; j-- {
			x[j+1] = x[j]
		}
		x[j+1] = v
	}
}

// unguardedInsertionSort sorts x[a:b] by insertion without testing the
// left bound in the inner loop. x[a] is kept the minimum of the sorted
// prefix, so the scan always stops at or after a.
func (s *sorter[E]) unguardedInsertionSort(a, b int) {
	x := s.x
	for i := a + 1; i < b; i++ {
		if s.less(i, a) {
			s.swap(i, a)
		}
		v := x[i]
		j := i - 1
		for ; s.cmp(v, x[j]) < 0; j-- {
			x[j+1] = x[j]
		}
		x[j+1] = v
	}
}

func (s *sorter[E]) baseInsertionSort(a, b int) {
	if checkedInsertion {
		s.insertionSort(a, b)
	} else {
		s.unguardedInsertionSort(a, b)
	}
}
