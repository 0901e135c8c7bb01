// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ths

import "math"

// Buckets holding more than this many elements are finished by heapsort
// instead of insertion sort.
const bucketHeapThreshold = 16

// staticSort sorts x[a:b] by spreading the elements over b-a-1 buckets
// with a linear scale on key, permuting them into their buckets in place
// and then sorting each bucket.
func (s *sorter[E]) staticSort(a, b int, key func(E) float64) {
	n := b - a
	if n < 2 {
		return
	}
	x := s.x

	// NaN keys are skipped here and land in the first bucket.
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := a; i < b; i++ {
		k := key(x[i])
		if k < lo {
			lo = k
		}
		if k > hi {
			hi = k
		}
	}

	buckets := n - 1
	var scale float64
	if hi > lo {
		scale = float64(buckets-1) / (hi - lo)
	}
	bucket := func(v E) int {
		f := (key(v) - lo) * scale
		switch {
		case !(f > 0): // also catches NaN
			return 0
		case f >= float64(buckets-1):
			return buckets - 1
		}
		return int(f)
	}

	count := make([]int, buckets)
	for i := a; i < b; i++ {
		count[bucket(x[i])]++
	}

	// next[d] is the next free slot of bucket d. Once every element is in
	// place it is the end of bucket d.
	next := make([]int, buckets)
	next[0] = a
	for d := 1; d < buckets; d++ {
		next[d] = next[d-1] + count[d-1]
	}

	for d := 0; d < buckets; d++ {
		for count[d] > 0 {
			start := next[d]
			v := x[start]
			for {
				t := bucket(v)
				to := next[t]
				next[t]++
				count[t]--
				v, x[to] = x[to], v
				if to == start {
					break
				}
			}
		}
	}

	for d := 0; d < buckets; d++ {
		start := a
		if d > 0 {
			start = next[d-1]
		}
		end := next[d]
		switch {
		case end-start <= 1:
		case end-start > bucketHeapThreshold:
			s.heapSort(start, end)
		default:
			s.insertionSort(start, end)
		}
	}
}
