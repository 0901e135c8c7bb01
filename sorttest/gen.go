// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sorttest checks in-place sorting functions against a reference
// sort on generated inputs.
//
// A Generator produces inputs of a given Shape, RunCase sorts one input with
// an Algorithm and verifies sortedness, permutation, range discipline and,
// where the algorithm promises them, idempotence and stability. A Plan,
// usually read from YAML, expands into the Cases to run.
package sorttest

import (
	"golang.org/x/exp/rand"
	"golang.org/x/xerrors"
)

// A Shape names a family of inputs.
type Shape string

const (
	Random       Shape = "random"        // uniform in [0, n)
	Uniform100   Shape = "uniform100"    // uniform in [0, 100)
	FewUnique    Shape = "few-unique"    // uniform in [0, 4)
	Sorted       Shape = "sorted"        // 0, 1, ..., n-1
	Reversed     Shape = "reversed"      // n, n-1, ..., 1
	NearlySorted Shape = "nearly-sorted" // sorted with n/20 random swaps
	Sawtooth     Shape = "sawtooth"      // ascending ramps of length 32
	PipeOrgan    Shape = "pipe-organ"    // ascending then descending
	AllEqual     Shape = "all-equal"
)

// Shapes lists every Shape a Generator knows.
var Shapes = []Shape{
	Random, Uniform100, FewUnique, Sorted, Reversed,
	NearlySorted, Sawtooth, PipeOrgan, AllEqual,
}

// ParseShape returns the Shape named s.
func ParseShape(s string) (Shape, error) {
	for _, sh := range Shapes {
		if string(sh) == s {
			return sh, nil
		}
	}
	return "", xerrors.Errorf("unknown shape %q", s)
}

// A Generator produces deterministic inputs from a seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Ints returns n ints of the given shape.
func (g *Generator) Ints(shape Shape, n int) []int {
	x := make([]int, n)
	switch shape {
	case Random:
		for i := range x {
			x[i] = g.rng.Intn(n)
		}
	case Uniform100:
		for i := range x {
			x[i] = g.rng.Intn(100)
		}
	case FewUnique:
		for i := range x {
			x[i] = g.rng.Intn(4)
		}
	case Sorted:
		for i := range x {
			x[i] = i
		}
	case Reversed:
		for i := range x {
			x[i] = n - i
		}
	case NearlySorted:
		for i := range x {
			x[i] = i
		}
		for k := 0; k < n/20; k++ {
			i, j := g.rng.Intn(n), g.rng.Intn(n)
			x[i], x[j] = x[j], x[i]
		}
	case Sawtooth:
		for i := range x {
			x[i] = i % 32
		}
	case PipeOrgan:
		for i := range x {
			if i < n/2 {
				x[i] = i
			} else {
				x[i] = n - i
			}
		}
	case AllEqual:
		for i := range x {
			x[i] = 7
		}
	default:
		panic("sorttest: unknown shape " + string(shape))
	}
	return x
}

// Tagged is a value carrying the position it was generated at. Tagged
// values are ordered by Value alone, so equal values can be told apart
// when checking stability.
type Tagged struct {
	Value  int
	Origin int
}

// Tag pairs every value with its index.
func Tag(values []int) []Tagged {
	t := make([]Tagged, len(values))
	for i, v := range values {
		t[i] = Tagged{Value: v, Origin: i}
	}
	return t
}

// CompareTagged orders Tagged values by Value.
func CompareTagged(a, b Tagged) int {
	switch {
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	}
	return 0
}

// TaggedKey projects a Tagged value onto its Value.
func TaggedKey(t Tagged) float64 {
	return float64(t.Value)
}

// CompareInts is the natural order on ints.
func CompareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
