// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorttest

import (
	"encoding/binary"
	"fmt"

	"github.com/RoaringBitmap/roaring"
	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
)

// A Property is one of the guarantees RunCase checks.
type Property string

const (
	PropSorted      Property = "sorted"
	PropPermutation Property = "permutation"
	PropBounds      Property = "bounds"
	PropIdempotent  Property = "idempotent"
	PropStable      Property = "stable"
	PropError       Property = "error"
)

// A Violation reports a broken Property.
type Violation struct {
	Property Property
	Case     Case
	Detail   string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s violated: %s", v.Case, v.Property, v.Detail)
}

// Reference returns a sorted copy of x.
func Reference(x []int) []int {
	ref := slices.Clone(x)
	slices.Sort(ref)
	return ref
}

// ReferenceTagged returns a stably sorted copy of x.
func ReferenceTagged(x []Tagged) []Tagged {
	ref := slices.Clone(x)
	slices.SortStableFunc(ref, func(a, b Tagged) bool { return a.Value < b.Value })
	return ref
}

// Fingerprint returns a hash of the multiset of values in x. It does not
// depend on the order of x.
func Fingerprint(x []int) uint64 {
	var sum uint64
	var b [8]byte
	for _, v := range x {
		binary.LittleEndian.PutUint64(b[:], uint64(v))
		sum += xxhash.Sum64(b[:])
	}
	return sum
}

// FirstUnsorted returns the first index i with cmp(x[i], x[i-1]) < 0, or -1
// if x is sorted.
func FirstUnsorted[E any](x []E, cmpFn func(a, b E) int) int {
	for i := 1; i < len(x); i++ {
		if cmpFn(x[i], x[i-1]) < 0 {
			return i
		}
	}
	return -1
}

// Unstable returns the first index i at which x[i-1] and x[i] have equal
// values but out-of-order origins, or -1 if there is none.
func Unstable(x []Tagged) int {
	for i := 1; i < len(x); i++ {
		if x[i].Value == x[i-1].Value && x[i].Origin < x[i-1].Origin {
			return i
		}
	}
	return -1
}

// MissingOrigins reports which origins in [0, n) do not occur in x, and
// whether some origin occurs more than once.
func MissingOrigins(x []Tagged, n int) (missing []uint32, duplicated bool) {
	seen := roaring.New()
	for _, t := range x {
		if !seen.CheckedAdd(uint32(t.Origin)) {
			duplicated = true
		}
	}
	want := roaring.New()
	want.AddRange(0, uint64(n))
	want.AndNot(seen)
	return want.ToArray(), duplicated
}

// Diff returns a human-readable difference between want and got, or "" if
// they are equal.
func Diff[E any](want, got []E) string {
	return cmp.Diff(want, got)
}
