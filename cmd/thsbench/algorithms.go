// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"golang.org/x/xerrors"

	"github.com/thssort/thssort/sorttest"
	"github.com/thssort/thssort/ths"
)

var algorithms = map[string]sorttest.Algorithm{
	"unstable": {
		Name:       "unstable",
		Idempotent: true,
		Ints:       ths.SortRange[int],
		Tagged: func(x []sorttest.Tagged, a, b int) error {
			return ths.SortRangeFunc(x, a, b, sorttest.CompareTagged)
		},
	},
	"stable": {
		Name:       "stable",
		Stable:     true,
		Idempotent: true,
		Ints:       ths.SortStableRange[int],
		Tagged: func(x []sorttest.Tagged, a, b int) error {
			return ths.SortStableRangeFunc(x, a, b, sorttest.CompareTagged)
		},
	},
	"static": {
		Name: "static",
		Ints: ths.SortStaticRange[int],
		Tagged: func(x []sorttest.Tagged, a, b int) error {
			return ths.SortStaticRangeFunc(x, a, b, sorttest.CompareTagged, sorttest.TaggedKey)
		},
	},
}

var floatSorts = map[string]func([]float64){
	"unstable": ths.Sort[float64],
	"stable":   ths.SortStable[float64],
	"static":   ths.SortStatic[float64],
}

func algorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	ths.Sort(names)
	return names
}

// loadPlan reads the plan at path, or returns the default plan if path is
// empty.
func loadPlan(path string) (*sorttest.Plan, error) {
	if path == "" {
		return sorttest.DefaultPlan(algorithmNames()), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("reading plan: %w", err)
	}
	return sorttest.ParsePlan(data, algorithmNames())
}
