// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"github.com/thssort/thssort/sorttest"
)

func smallPlan() *sorttest.Plan {
	return &sorttest.Plan{
		Seed:       7,
		Trials:     2,
		Algorithms: algorithmNames(),
		Shapes:     []sorttest.Shape{sorttest.Random, sorttest.FewUnique, sorttest.Reversed},
		Sizes:      []int{0, 1, 17, 100},
	}
}

func TestAlgorithmNames(t *testing.T) {
	want := []string{"stable", "static", "unstable"}
	if d := cmp.Diff(want, algorithmNames()); d != "" {
		t.Errorf("algorithmNames mismatch (-want +got):\n%s", d)
	}
	for _, name := range want {
		if algorithms[name].Name != name {
			t.Errorf("algorithms[%q].Name = %q", name, algorithms[name].Name)
		}
		if floatSorts[name] == nil {
			t.Errorf("no float sort for %q", name)
		}
	}
}

func TestLoadPlan(t *testing.T) {
	p, err := loadPlan("")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(sorttest.DefaultPlan(algorithmNames()), p); d != "" {
		t.Errorf("default plan mismatch (-want +got):\n%s", d)
	}

	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte("seed: 9\nalgorithms: [stable]\nsizes: [5, 50]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err = loadPlan(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Seed != 9 || len(p.Algorithms) != 1 || p.Algorithms[0] != "stable" {
		t.Errorf("loadPlan(%q) = %+v", path, p)
	}

	if _, err := loadPlan(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("loadPlan of a missing file succeeded")
	}
}

func TestVerify(t *testing.T) {
	c := &verifyCmd{log: zaptest.NewLogger(t), parallel: 4}
	failures, err := c.run(context.Background(), smallPlan())
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range failures {
		t.Error(f)
	}
}

func TestVerifyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := &verifyCmd{log: zaptest.NewLogger(t), parallel: 1}
	if _, err := c.run(ctx, smallPlan()); err == nil {
		t.Error("run with a cancelled context succeeded")
	}
}

func TestBench(t *testing.T) {
	plan := smallPlan()
	c := &benchCmd{log: zaptest.NewLogger(t)}
	rep, err := c.run(context.Background(), plan)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(rep.Results), len(plan.Algorithms)*len(plan.Shapes)*len(plan.Sizes); got != want {
		t.Fatalf("got %d results, want %d", got, want)
	}
	for _, r := range rep.Results {
		if r.Trials != plan.Trials {
			t.Errorf("%s/%s/%d: %d trials, want %d", r.Algorithm, r.Shape, r.N, r.Trials, plan.Trials)
		}
		if r.P50 <= 0 || r.P50 > r.P99 {
			t.Errorf("%s/%s/%d: p50 %v, p99 %v", r.Algorithm, r.Shape, r.N, r.P50, r.P99)
		}
		if math.IsNaN(r.Mean) || r.Mean <= 0 {
			t.Errorf("%s/%s/%d: mean %v", r.Algorithm, r.Shape, r.N, r.Mean)
		}
	}

	var buf bytes.Buffer
	if err := printReport(&buf, rep); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), rep.RunID) {
		t.Errorf("printed report does not name run %s", rep.RunID)
	}

	path := filepath.Join(t.TempDir(), "report.json")
	if err := writeReport(path, rep); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.RunID != rep.RunID || len(got.Results) != len(rep.Results) {
		t.Errorf("report round trip: got run %s with %d results", got.RunID, len(got.Results))
	}
}

func TestReadNumbers(t *testing.T) {
	x, err := readNumbers(strings.NewReader("3\n\n  -1.5 \n1e3\n0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{3, -1.5, 1000, 0}, x); d != "" {
		t.Errorf("readNumbers mismatch (-want +got):\n%s", d)
	}

	_, err = readNumbers(strings.NewReader("1\n2\nthree\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("readNumbers of a bad line: got %v, want an error naming line 3", err)
	}
}

func TestSortFile(t *testing.T) {
	for _, algo := range algorithmNames() {
		x, err := readNumbers(strings.NewReader("5\n-2\n3.25\n-2\n10\n0\n"))
		if err != nil {
			t.Fatal(err)
		}
		floatSorts[algo](x)

		path := filepath.Join(t.TempDir(), "out.txt")
		if err := os.WriteFile(path, []byte("old contents\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := writeNumbersAtomic(path, x); err != nil {
			t.Fatal(err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff("-2\n-2\n0\n3.25\n5\n10\n", string(got)); d != "" {
			t.Errorf("%s: output mismatch (-want +got):\n%s", algo, d)
		}
	}
}
