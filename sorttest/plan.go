// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorttest

import (
	"github.com/ghodss/yaml"
	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"
)

// A Plan describes a set of Cases: every algorithm is run on every shape at
// every size, Trials times with consecutive seeds.
type Plan struct {
	Seed       uint64   `json:"seed"`
	Trials     int      `json:"trials"`
	Algorithms []string `json:"algorithms"`
	Shapes     []Shape  `json:"shapes"`
	Sizes      []int    `json:"sizes"`
}

// DefaultSizes straddle every threshold the sorts switch strategy at.
var DefaultSizes = []int{0, 1, 2, 3, 8, 9, 15, 16, 17, 31, 32, 33, 64, 80, 81, 100, 257, 1000, 10000}

// DefaultPlan returns the Plan used when no plan file is given.
func DefaultPlan(algorithms []string) *Plan {
	return &Plan{
		Seed:       1,
		Trials:     3,
		Algorithms: algorithms,
		Shapes:     Shapes,
		Sizes:      DefaultSizes,
	}
}

// ParsePlan decodes a YAML plan. Fields left out are taken from
// DefaultPlan(algorithms).
func ParsePlan(data []byte, algorithms []string) (*Plan, error) {
	p := new(Plan)
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, xerrors.Errorf("parsing plan: %w", err)
	}
	def := DefaultPlan(algorithms)
	if p.Seed == 0 {
		p.Seed = def.Seed
	}
	if p.Trials == 0 {
		p.Trials = def.Trials
	}
	if len(p.Algorithms) == 0 {
		p.Algorithms = def.Algorithms
	}
	if len(p.Shapes) == 0 {
		p.Shapes = def.Shapes
	}
	if len(p.Sizes) == 0 {
		p.Sizes = def.Sizes
	}
	if err := p.validate(algorithms); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Plan) validate(known []string) error {
	if p.Trials < 0 {
		return xerrors.Errorf("plan: negative trials %d", p.Trials)
	}
	for _, a := range p.Algorithms {
		if !slices.Contains(known, a) {
			return xerrors.Errorf("plan: unknown algorithm %q", a)
		}
	}
	for _, s := range p.Shapes {
		if _, err := ParseShape(string(s)); err != nil {
			return xerrors.Errorf("plan: %w", err)
		}
	}
	for _, n := range p.Sizes {
		if n < 0 {
			return xerrors.Errorf("plan: negative size %d", n)
		}
	}
	return nil
}

// Cases expands p.
func (p *Plan) Cases() []Case {
	var cases []Case
	for _, alg := range p.Algorithms {
		for _, shape := range p.Shapes {
			for _, n := range p.Sizes {
				for t := 0; t < p.Trials; t++ {
					cases = append(cases, Case{
						Algorithm: alg,
						Shape:     shape,
						N:         n,
						Seed:      p.Seed + uint64(t),
					})
				}
			}
		}
	}
	return cases
}
