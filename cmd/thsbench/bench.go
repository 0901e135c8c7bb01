// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/google/renameio"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/stat"

	"github.com/thssort/thssort/sorttest"
)

// Histogram bounds in nanoseconds: one nanosecond to 100 seconds at three
// significant figures.
const (
	histMin     = 1
	histMax     = 100 * int64(time.Second)
	histSigFigs = 3
)

type benchCmd struct {
	log    *zap.Logger
	config string
	out    string
}

func (*benchCmd) Name() string     { return "bench" }
func (*benchCmd) Synopsis() string { return "time the sorts over a plan of inputs" }
func (*benchCmd) Usage() string {
	return `bench [-config plan.yaml] [-out report.json]:
	Sort every shape and size of the plan Trials times per algorithm and
	report latency quantiles.
`
}

func (c *benchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.config, "config", "", "YAML plan file (default plan if empty)")
	f.StringVar(&c.out, "out", "", "write a JSON report to this file")
}

// A report is the result of one bench run.
type report struct {
	RunID   string    `json:"run_id"`
	Started time.Time `json:"started"`
	Seed    uint64    `json:"seed"`
	Results []result  `json:"results"`
}

// A result summarizes the trials of one algorithm on one input.
type result struct {
	Algorithm string         `json:"algorithm"`
	Shape     sorttest.Shape `json:"shape"`
	N         int            `json:"n"`
	Trials    int            `json:"trials"`
	P50       time.Duration  `json:"p50_ns"`
	P95       time.Duration  `json:"p95_ns"`
	P99       time.Duration  `json:"p99_ns"`
	Mean      float64        `json:"mean_ns"`
	StdDev    float64        `json:"stddev_ns"`
}

func (c *benchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	plan, err := loadPlan(c.config)
	if err != nil {
		c.log.Error("loading plan", zap.Error(err))
		return subcommands.ExitUsageError
	}
	rep, err := c.run(ctx, plan)
	if err != nil {
		c.log.Error("bench failed", zap.Error(err))
		return subcommands.ExitFailure
	}
	if err := printReport(os.Stdout, rep); err != nil {
		c.log.Error("printing report", zap.Error(err))
		return subcommands.ExitFailure
	}
	if c.out != "" {
		if err := writeReport(c.out, rep); err != nil {
			c.log.Error("writing report", zap.String("file", c.out), zap.Error(err))
			return subcommands.ExitFailure
		}
		c.log.Info("wrote report", zap.String("file", c.out), zap.String("run_id", rep.RunID))
	}
	return subcommands.ExitSuccess
}

func (c *benchCmd) run(ctx context.Context, plan *sorttest.Plan) (*report, error) {
	rep := &report{
		RunID:   uuid.New().String(),
		Started: time.Now().UTC(),
		Seed:    plan.Seed,
	}
	g := sorttest.NewGenerator(plan.Seed)
	for _, shape := range plan.Shapes {
		for _, n := range plan.Sizes {
			input := g.Ints(shape, n)
			for _, name := range plan.Algorithms {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				res, err := benchOne(algorithms[name], shape, input, plan.Trials)
				if err != nil {
					return nil, err
				}
				c.log.Debug("measured",
					zap.String("algorithm", name),
					zap.String("shape", string(shape)),
					zap.Int("n", n),
					zap.Duration("p50", res.P50))
				rep.Results = append(rep.Results, res)
			}
		}
	}
	return rep, nil
}

// benchOne sorts a fresh copy of input trials times.
func benchOne(alg sorttest.Algorithm, shape sorttest.Shape, input []int, trials int) (result, error) {
	h := hdrhistogram.New(histMin, histMax, histSigFigs)
	samples := make([]float64, 0, trials)
	x := make([]int, len(input))
	for t := 0; t < trials; t++ {
		copy(x, input)
		start := time.Now()
		if err := alg.Ints(x, 0, len(x)); err != nil {
			return result{}, xerrors.Errorf("%s on %s/%d: %w", alg.Name, shape, len(input), err)
		}
		d := time.Since(start).Nanoseconds()
		if d < histMin {
			d = histMin
		}
		if err := h.RecordValue(d); err != nil {
			return result{}, xerrors.Errorf("recording %dns: %w", d, err)
		}
		samples = append(samples, float64(d))
	}
	res := result{
		Algorithm: alg.Name,
		Shape:     shape,
		N:         len(input),
		Trials:    trials,
		P50:       time.Duration(h.ValueAtQuantile(50)),
		P95:       time.Duration(h.ValueAtQuantile(95)),
		P99:       time.Duration(h.ValueAtQuantile(99)),
	}
	if len(samples) > 1 {
		res.Mean, res.StdDev = stat.MeanStdDev(samples, nil)
	} else if len(samples) == 1 {
		res.Mean = samples[0]
	}
	return res, nil
}

func printReport(w io.Writer, rep *report) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s\n", rep.RunID)
	fmt.Fprintln(tw, "algorithm\tshape\tn\tp50\tp95\tp99\tmean\tstddev")
	for _, r := range rep.Results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%v\t%v\t%v\t%.0fns\t%.0fns\n",
			r.Algorithm, r.Shape, r.N, r.P50, r.P95, r.P99, r.Mean, r.StdDev)
	}
	return tw.Flush()
}

func writeReport(path string, rep *report) error {
	data, err := json.MarshalIndent(rep, "", "\t")
	if err != nil {
		return err
	}
	return renameio.WriteFile(path, append(data, '\n'), 0o644)
}
