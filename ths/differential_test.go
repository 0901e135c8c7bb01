// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ths

import (
	"testing"

	"github.com/thssort/thssort/sorttest"
)

var algorithms = []sorttest.Algorithm{{
	Name:       "unstable",
	Idempotent: true,
	Ints:       SortRange[int],
	Tagged: func(x []sorttest.Tagged, a, b int) error {
		return SortRangeFunc(x, a, b, sorttest.CompareTagged)
	},
}, {
	Name:       "stable",
	Stable:     true,
	Idempotent: true,
	Ints:       SortStableRange[int],
	Tagged: func(x []sorttest.Tagged, a, b int) error {
		return SortStableRangeFunc(x, a, b, sorttest.CompareTagged)
	},
}, {
	Name: "static",
	Ints: SortStaticRange[int],
	Tagged: func(x []sorttest.Tagged, a, b int) error {
		return SortStaticRangeFunc(x, a, b, sorttest.CompareTagged, sorttest.TaggedKey)
	},
}}

func TestDifferential(t *testing.T) {
	var names []string
	for _, alg := range algorithms {
		names = append(names, alg.Name)
	}
	p := sorttest.DefaultPlan(names)
	if testing.Short() {
		p.Trials = 1
		p.Sizes = []int{0, 1, 2, 16, 17, 33, 81, 1000}
	}
	for _, alg := range algorithms {
		alg := alg
		t.Run(alg.Name, func(t *testing.T) {
			for _, c := range p.Cases() {
				if c.Algorithm != alg.Name {
					continue
				}
				if err := sorttest.RunCase(alg, c); err != nil {
					t.Error(err)
				}
			}
		})
	}
}

func TestStaticUniform100(t *testing.T) {
	g := sorttest.NewGenerator(100)
	data := g.Ints(sorttest.Uniform100, 1000)
	want := sorttest.Reference(data)
	SortStatic(data)
	if d := sorttest.Diff(want, data); d != "" {
		t.Errorf("SortStatic mismatch (-want +got):\n%s", d)
	}
}
