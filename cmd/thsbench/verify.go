// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"runtime"
	"sync"

	"github.com/google/subcommands"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/thssort/thssort/sorttest"
)

type verifyCmd struct {
	log      *zap.Logger
	config   string
	seed     uint64
	parallel int
}

func (*verifyCmd) Name() string     { return "verify" }
func (*verifyCmd) Synopsis() string { return "check the sort properties over a plan of inputs" }
func (*verifyCmd) Usage() string {
	return `verify [-config plan.yaml] [-seed N] [-parallel N]:
	Run every case of the plan and report property violations.
`
}

func (c *verifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.config, "config", "", "YAML plan file (default plan if empty)")
	f.Uint64Var(&c.seed, "seed", 0, "override the plan seed if nonzero")
	f.IntVar(&c.parallel, "parallel", runtime.NumCPU(), "number of cases run concurrently")
}

func (c *verifyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	plan, err := loadPlan(c.config)
	if err != nil {
		c.log.Error("loading plan", zap.Error(err))
		return subcommands.ExitUsageError
	}
	if c.seed != 0 {
		plan.Seed = c.seed
	}
	failures, err := c.run(ctx, plan)
	if err != nil {
		c.log.Error("verify interrupted", zap.Error(err))
		return subcommands.ExitFailure
	}
	if len(failures) > 0 {
		c.log.Error("property violations", zap.Int("count", len(failures)))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run executes the plan's cases on c.parallel workers and returns every
// violation found. The error is non-nil only if ctx was cancelled.
func (c *verifyCmd) run(ctx context.Context, plan *sorttest.Plan) ([]error, error) {
	cases := plan.Cases()
	workers := c.parallel
	if workers < 1 {
		workers = 1
	}

	var (
		mu       sync.Mutex
		failures []error
	)
	work := make(chan sorttest.Case)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for tc := range work {
				err := sorttest.RunCase(algorithms[tc.Algorithm], tc)
				if err == nil {
					c.log.Debug("pass", zap.Stringer("case", tc))
					continue
				}
				c.log.Error("fail", zap.Stringer("case", tc), zap.Error(err))
				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(work)
		for _, tc := range cases {
			select {
			case work <- tc:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return failures, err
	}
	c.log.Info("verified", zap.Int("cases", len(cases)), zap.Int("failures", len(failures)))
	return failures, nil
}
