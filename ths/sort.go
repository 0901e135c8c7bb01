// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ths provides three in-place sorts over a slice or a half-open
// index range [a, b) of it:
//
//   - Sort: an unstable hybrid of partition-exchange, heap, shell and
//     insertion sort with natural-run detection and a recursion-depth budget.
//   - SortStable: a stable hybrid of binary-insertion sort and merge sort
//     whose merges are narrowed by binary search and done in place or through
//     a buffer the size of the smaller side.
//   - SortStatic: a bucket sort for elements with a numeric projection,
//     permuting in place by cycle following.
//
// Every function has a Func variant taking a comparison that returns a
// negative number, zero or a positive number, and a Range variant that sorts
// only x[a:b] and reports an invalid range with an error wrapping ErrRange
// before touching the slice.
package ths

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"
)

// ErrRange is reported by the Range functions when a > b, a < 0 or
// b > len(x).
var ErrRange = xerrors.New("ths: invalid range")

func checkRange(n, a, b int) error {
	if a < 0 || a > b || b > n {
		return xerrors.Errorf("sort [%d:%d] of length %d: %w", a, b, n, ErrRange)
	}
	return nil
}

// Sort sorts the slice x in ascending order. The sort is not guaranteed to be
// stable. For floating-point types NaNs are ordered before other values.
func Sort[E constraints.Ordered](x []E) {
	newSorter(x, compare[E]).sort(0, len(x))
}

// SortFunc sorts the slice x in ascending order as determined by cmp.
// cmp(a, b) must return a negative number when a < b, a positive number when
// a > b and zero otherwise, and must describe a strict weak ordering.
func SortFunc[E any](x []E, cmp func(a, b E) int) {
	newSorter(x, cmp).sort(0, len(x))
}

// SortRange sorts x[a:b] like Sort.
func SortRange[E constraints.Ordered](x []E, a, b int) error {
	return SortRangeFunc(x, a, b, compare[E])
}

// SortRangeFunc sorts x[a:b] like SortFunc.
func SortRangeFunc[E any](x []E, a, b int, cmp func(a, b E) int) error {
	if err := checkRange(len(x), a, b); err != nil {
		return err
	}
	newSorter(x, cmp).sort(a, b)
	return nil
}

// SortStable sorts the slice x while keeping the original order of equal
// elements.
func SortStable[E constraints.Ordered](x []E) {
	newSorter(x, compare[E]).stableSort(0, len(x))
}

// SortStableFunc sorts the slice x with cmp while keeping the original order
// of elements for which cmp returns zero.
func SortStableFunc[E any](x []E, cmp func(a, b E) int) {
	newSorter(x, cmp).stableSort(0, len(x))
}

// SortStableRange sorts x[a:b] like SortStable.
func SortStableRange[E constraints.Ordered](x []E, a, b int) error {
	return SortStableRangeFunc(x, a, b, compare[E])
}

// SortStableRangeFunc sorts x[a:b] like SortStableFunc.
func SortStableRangeFunc[E any](x []E, a, b int, cmp func(a, b E) int) error {
	if err := checkRange(len(x), a, b); err != nil {
		return err
	}
	newSorter(x, cmp).stableSort(a, b)
	return nil
}

// Number is the set of element types SortStatic can project onto a float64
// without help.
type Number interface {
	constraints.Integer | constraints.Float
}

// SortStatic sorts the slice x by distributing its values into buckets. It
// runs in expected linear time when the values are spread evenly over their
// range. The sort is not stable.
func SortStatic[E Number](x []E) {
	newSorter(x, compare[E]).staticSort(0, len(x), identity[E])
}

// SortStaticFunc sorts the slice x by distributing its elements into buckets
// according to key and ordering each bucket with cmp.
//
// key must be monotone with cmp: whenever cmp(a, b) < 0, key(a) <= key(b).
// If it is not, x still ends up a permutation of its input but not
// necessarily sorted.
func SortStaticFunc[E any](x []E, cmp func(a, b E) int, key func(E) float64) {
	newSorter(x, cmp).staticSort(0, len(x), key)
}

// SortStaticRange sorts x[a:b] like SortStatic.
func SortStaticRange[E Number](x []E, a, b int) error {
	return SortStaticRangeFunc(x, a, b, compare[E], identity[E])
}

// SortStaticRangeFunc sorts x[a:b] like SortStaticFunc.
func SortStaticRangeFunc[E any](x []E, a, b int, cmp func(a, b E) int, key func(E) float64) error {
	if err := checkRange(len(x), a, b); err != nil {
		return err
	}
	newSorter(x, cmp).staticSort(a, b, key)
	return nil
}

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[E constraints.Ordered](x []E) bool {
	return IsSortedFunc(x, compare[E])
}

// IsSortedFunc reports whether x is sorted in ascending order, with cmp as
// the comparison function.
func IsSortedFunc[E any](x []E, cmp func(a, b E) int) bool {
	for i := len(x) - 1; i > 0; i-- {
		if cmp(x[i], x[i-1]) < 0 {
			return false
		}
	}
	return true
}

// BinarySearch searches for target in a sorted slice and returns the smallest
// index at which target is found. If there is no such index, it returns the
// index where target would be inserted.
func BinarySearch[E constraints.Ordered](x []E, target E) int {
	return BinarySearchFunc(x, target, compare[E])
}

// BinarySearchFunc is like BinarySearch but orders elements with cmp.
func BinarySearchFunc[E any](x []E, target E, cmp func(a, b E) int) int {
	return newSorter(x, cmp).binarySearch(0, len(x), target, true)
}

// compare orders NaNs before all other values so that floating-point
// slices have a total order.
func compare[E constraints.Ordered](a, b E) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func isNaN[E constraints.Ordered](x E) bool {
	return x != x
}

func identity[E Number](x E) float64 {
	return float64(x)
}
