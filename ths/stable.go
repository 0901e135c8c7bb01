// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ths

const (
	// Descending runs longer than this are reversed before sorting.
	reverseRunThreshold = 8
	// Ranges no longer than this are sorted by binary insertion.
	stableInsertionThreshold = 32
	// Merges whose smaller side is no longer than this are done by rotation
	// instead of through the buffer.
	rotationMergeThreshold = 16
)

func (s *sorter[E]) stableSort(a, b int) {
	if b-a < 2 || s.reversedRun(a, b) {
		return
	}
	if b-a > stableInsertionThreshold {
		m := a + (b-a)/2
		s.stableSort(a, m)
		s.stableSort(m, b)
		s.merge(a, m, b)
		return
	}
	s.binaryInsertionSort(a, b)
}

// reversedRun finds the strictly descending run at the start of x[a:b] and
// reverses it if it is longer than reverseRunThreshold. Equal neighbours end
// the run, so reversing never reorders equal elements. It reports whether
// the run was reversed and covered all of x[a:b].
func (s *sorter[E]) reversedRun(a, b int) bool {
	i := a + 1
	for i < b && s.less(i, i-1) {
		i++
	}
	if i-a <= reverseRunThreshold {
		return false
	}
	s.reverse(a, i)
	return i == b
}

// binaryInsertionSort sorts x[a:b], placing each element after any equal
// elements already in the sorted prefix.
func (s *sorter[E]) binaryInsertionSort(a, b int) {
	for i := a + 1; i < b; i++ {
		if s.less(i, i-1) {
			s.insertTo(i, s.binarySearch(a, i-1, s.x[i], false))
		}
	}
}

// merge merges the sorted ranges x[a:m] and x[m:b]. Elements of x[a:m]
// precede equal elements of x[m:b].
func (s *sorter[E]) merge(a, m, b int) {
	if !s.less(m, m-1) {
		return
	}
	if s.less(b-1, a) {
		s.rotate(a, m, b)
		return
	}

	// Trim the elements on both ends that are already in place.
	b = s.binarySearch(m, b, s.x[m-1], true)
	a = s.binarySearch(a, m-1, s.x[m], false)

	if b-m < m-a {
		if b-m <= rotationMergeThreshold {
			s.rotationMerge(a, m, b)
		} else {
			s.mergeBackward(a, m, b)
		}
	} else {
		if m-a <= rotationMergeThreshold {
			s.rotationMerge(a, m, b)
		} else {
			s.mergeForward(a, m, b)
		}
	}
}

func (s *sorter[E]) buffer(n int) []E {
	if cap(s.buf) < n {
		s.buf = make([]E, n)
	}
	return s.buf[:n]
}

// mergeForward merges by copying x[a:m] aside and filling x[a:b] from the
// front.
func (s *sorter[E]) mergeForward(a, m, b int) {
	x := s.x
	left := s.buffer(m - a)
	copy(left, x[a:m])

	i, j, k := 0, m, a
	for i < len(left) && j < b {
		if s.cmp(left[i], x[j]) <= 0 {
			x[k] = left[i]
			i++
		} else {
			x[k] = x[j]
			j++
		}
		k++
	}
	copy(x[k:], left[i:])
}

// mergeBackward merges by copying x[m:b] aside and filling x[a:b] from the
// back.
func (s *sorter[E]) mergeBackward(a, m, b int) {
	x := s.x
	right := s.buffer(b - m)
	copy(right, x[m:b])

	i, j, k := m-1, len(right)-1, b-1
	for i >= a && j >= 0 {
		if s.cmp(x[i], right[j]) > 0 {
			x[k] = x[i]
			i--
		} else {
			x[k] = right[j]
			j--
		}
		k--
	}
	copy(x[a:], right[:j+1])
}

// rotationMerge merges without a buffer, rotating each block of the larger
// side into place after a binary search for its end.
func (s *sorter[E]) rotationMerge(a, m, b int) {
	if m-a <= b-m {
		i, j := a, m
		for i < j && j < b {
			if s.less(j, i) {
				k := s.binarySearch(j, b, s.x[i], true)
				s.rotate(i, j, k)
				i += k - j
				j = k
			} else {
				i++
			}
		}
		return
	}

	i, j := m-1, b-1
	for j > i && i >= a {
		if s.less(j, i) {
			k := s.binarySearch(a, i, s.x[j], false)
			s.rotate(k, i+1, j+1)
			j -= i + 1 - k
			i = k - 1
		} else {
			j--
		}
	}
}
