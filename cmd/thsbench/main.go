// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Thsbench checks and times the sorts in package ths.
//
// Usage:
//
//	thsbench [-v] verify [-config plan.yaml] [-seed N] [-parallel N]
//	thsbench [-v] bench [-config plan.yaml] [-out report.json]
//	thsbench [-v] sort [-algo unstable|stable|static] [-o out] [file]
//
// verify runs every case of a plan through sorttest.RunCase and exits with
// status 1 if any property is violated. bench reports per-case latency
// quantiles. sort reads one number per line from file or standard input and
// writes them back sorted.
//
// A plan is a YAML file such as
//
//	seed: 1
//	trials: 3
//	algorithms: [unstable, stable, static]
//	shapes: [random, few-unique, sorted, reversed]
//	sizes: [0, 1, 17, 1000]
//
// Fields left out take their defaults.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	verbose := flag.Bool("v", false, "log at debug level in a human-readable format")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "thsbench: %v\n", err)
		os.Exit(2)
	}

	subcommands.Register(&verifyCmd{log: logger.Named("verify")}, "")
	subcommands.Register(&benchCmd{log: logger.Named("bench")}, "")
	subcommands.Register(&sortCmd{log: logger.Named("sort")}, "")

	status := subcommands.Execute(context.Background())
	_ = logger.Sync()
	os.Exit(int(status))
}
