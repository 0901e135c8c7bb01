// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorttest

import (
	"fmt"

	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"
)

// margin is the number of elements left on each side of the sorted range
// so that writes outside [a, b) are caught.
const margin = 3

// An Algorithm is a sort under test. Ints and Tagged sort x[a:b] in place.
type Algorithm struct {
	Name string

	// Stable is set when equal elements must keep their order.
	Stable bool
	// Idempotent is set when sorting sorted input must leave it unchanged.
	Idempotent bool

	Ints   func(x []int, a, b int) error
	Tagged func(x []Tagged, a, b int) error
}

// A Case is one input to sort.
type Case struct {
	Algorithm string `json:"algorithm"`
	Shape     Shape  `json:"shape"`
	N         int    `json:"n"`
	Seed      uint64 `json:"seed"`
}

func (c Case) String() string {
	return fmt.Sprintf("%s/%s/n=%d/seed=%d", c.Algorithm, c.Shape, c.N, c.Seed)
}

// RunCase sorts the input described by c with alg and checks the result.
// It returns a *Violation for the first property that does not hold.
func RunCase(alg Algorithm, c Case) error {
	g := NewGenerator(c.Seed)
	values := g.Ints(c.Shape, c.N)

	if err := runInts(alg, c, values); err != nil {
		return err
	}
	if alg.Tagged != nil {
		return runTagged(alg, c, values)
	}
	return nil
}

func runInts(alg Algorithm, c Case, values []int) error {
	x := withMargins(values, -1)
	a, b := margin, margin+len(values)
	if err := alg.Ints(x, a, b); err != nil {
		return &Violation{PropError, c, err.Error()}
	}
	if !marginsIntact(x, a, b, -1) {
		return &Violation{PropBounds, c, fmt.Sprintf("margins changed: %v ... %v", x[:a], x[b:])}
	}
	got := x[a:b]
	if i := FirstUnsorted(got, CompareInts); i >= 0 {
		return &Violation{PropSorted, c, fmt.Sprintf("x[%d]=%d < x[%d]=%d", i, got[i], i-1, got[i-1])}
	}
	if Fingerprint(got) != Fingerprint(values) {
		return &Violation{PropPermutation, c, "multiset fingerprint changed"}
	}
	if d := Diff(Reference(values), got); d != "" {
		return &Violation{PropPermutation, c, "differs from reference (-want +got):\n" + d}
	}

	if alg.Idempotent {
		again := slices.Clone(x)
		if err := alg.Ints(again, a, b); err != nil {
			return &Violation{PropError, c, err.Error()}
		}
		if d := Diff(x, again); d != "" {
			return &Violation{PropIdempotent, c, "second sort changed the result (-first +second):\n" + d}
		}
	}
	return nil
}

func runTagged(alg Algorithm, c Case, values []int) error {
	tagged := Tag(values)
	x := make([]Tagged, 0, len(tagged)+2*margin)
	for i := 0; i < margin; i++ {
		x = append(x, Tagged{Value: -1, Origin: -1})
	}
	x = append(x, tagged...)
	for i := 0; i < margin; i++ {
		x = append(x, Tagged{Value: -1, Origin: -1})
	}
	a, b := margin, margin+len(tagged)

	if err := alg.Tagged(x, a, b); err != nil {
		return &Violation{PropError, c, err.Error()}
	}
	if !marginsIntact(x, a, b, Tagged{Value: -1, Origin: -1}) {
		return &Violation{PropBounds, c, fmt.Sprintf("margins changed: %v ... %v", x[:a], x[b:])}
	}
	got := x[a:b]
	if i := FirstUnsorted(got, CompareTagged); i >= 0 {
		return &Violation{PropSorted, c, fmt.Sprintf("tagged x[%d]=%v < x[%d]=%v", i, got[i], i-1, got[i-1])}
	}
	if missing, dup := MissingOrigins(got, len(values)); len(missing) > 0 || dup {
		return &Violation{PropPermutation, c, fmt.Sprintf("origins missing %v, duplicated %t", missing, dup)}
	}
	if alg.Stable {
		if i := Unstable(got); i >= 0 {
			return &Violation{PropStable, c, fmt.Sprintf("x[%d]=%v before x[%d]=%v", i-1, got[i-1], i, got[i])}
		}
		if d := Diff(ReferenceTagged(tagged), got); d != "" {
			return &Violation{PropStable, c, "differs from stable reference (-want +got):\n" + d}
		}
	}
	return nil
}

func withMargins(values []int, fill int) []int {
	x := make([]int, 0, len(values)+2*margin)
	for i := 0; i < margin; i++ {
		x = append(x, fill)
	}
	x = append(x, values...)
	for i := 0; i < margin; i++ {
		x = append(x, fill)
	}
	return x
}

func marginsIntact[E comparable](x []E, a, b int, fill E) bool {
	for i := range x {
		if (i < a || i >= b) && x[i] != fill {
			return false
		}
	}
	return true
}

// IsViolation reports whether err is or wraps a *Violation.
func IsViolation(err error) bool {
	var v *Violation
	return xerrors.As(err, &v)
}
