// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ths

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/thssort/thssort/sorttest"
)

func TestReversedRun(t *testing.T) {
	for _, test := range []struct {
		name string
		in   []int
		want []int
		done bool
	}{{
		name: "short run left alone",
		in:   []int{5, 4, 3, 2, 1},
		want: []int{5, 4, 3, 2, 1},
	}, {
		name: "whole range reversed",
		in:   []int{9, 8, 7, 6, 5, 4, 3, 2, 1},
		want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		done: true,
	}, {
		name: "prefix reversed",
		in:   []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 20, 0},
		want: []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 20, 0},
	}, {
		name: "tie ends the run",
		in:   []int{10, 9, 8, 7, 7, 6, 5, 4, 3, 2, 1},
		want: []int{10, 9, 8, 7, 7, 6, 5, 4, 3, 2, 1},
	}} {
		x := append([]int(nil), test.in...)
		done := newSorter(x, compare[int]).reversedRun(0, len(x))
		if done != test.done {
			t.Errorf("%s: reversedRun = %t, want %t", test.name, done, test.done)
		}
		if d := cmp.Diff(test.want, x); d != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", test.name, d)
		}
	}
}

func TestMergeStrategies(t *testing.T) {
	// Each pair of runs is chosen to reach one merge strategy: the early
	// exits, the rotation merge in both directions and the buffered merges
	// in both directions.
	g := sorttest.NewGenerator(11)
	for _, test := range []struct {
		name        string
		left, right int
		shape       func(n int) []int
	}{
		{"ordered", 40, 40, func(n int) []int { return seq(n) }},
		{"inverted", 40, 40, func(n int) []int {
			x := seq(n)
			copy(x, append(append([]int(nil), x[40:]...), x[:40]...))
			return x
		}},
		{"small left", 10, 200, nil},
		{"small right", 200, 10, nil},
		{"buffered forward", 100, 300, nil},
		{"buffered backward", 300, 100, nil},
		{"few unique", 150, 150, func(n int) []int { return g.Ints(sorttest.FewUnique, n) }},
	} {
		n := test.left + test.right
		var values []int
		if test.shape != nil {
			values = test.shape(n)
		} else {
			values = g.Ints(sorttest.Random, n)
		}
		tagged := sorttest.Tag(values)
		s := newSorter(tagged, sorttest.CompareTagged)
		s.stableSort(0, test.left)
		s.stableSort(test.left, n)
		s.merge(0, test.left, n)

		want := sorttest.ReferenceTagged(sorttest.Tag(values))
		if d := cmp.Diff(want, tagged); d != "" {
			t.Errorf("%s: merge mismatch (-want +got):\n%s", test.name, d)
		}
	}
}

func TestMergeBufferReuse(t *testing.T) {
	g := sorttest.NewGenerator(12)
	x := g.Ints(sorttest.Random, 4096)
	s := newSorter(x, compare[int])
	s.stableSort(0, len(x))
	if !IsSorted(x) {
		t.Fatalf("not sorted")
	}
	if cap(s.buf) > len(x)/2 {
		t.Errorf("merge buffer grew to %d for %d elements, want at most half", cap(s.buf), len(x))
	}
}
