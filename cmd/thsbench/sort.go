// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/renameio"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

type sortCmd struct {
	log  *zap.Logger
	algo string
	out  string
}

func (*sortCmd) Name() string     { return "sort" }
func (*sortCmd) Synopsis() string { return "sort numbers read one per line" }
func (*sortCmd) Usage() string {
	return `sort [-algo unstable|stable|static] [-o out] [file]:
	Read one number per line from file, or standard input if no file is
	given, and write them in ascending order.
`
}

func (c *sortCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.algo, "algo", "unstable", "sort to use: unstable, stable or static")
	f.StringVar(&c.out, "o", "", "replace this file atomically instead of writing to standard output")
}

func (c *sortCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	sortFn, ok := floatSorts[c.algo]
	if !ok {
		c.log.Error("unknown algorithm", zap.String("algo", c.algo), zap.Strings("known", algorithmNames()))
		return subcommands.ExitUsageError
	}

	in := io.Reader(os.Stdin)
	if f.NArg() == 1 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			c.log.Error("opening input", zap.Error(err))
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	x, err := readNumbers(in)
	if err != nil {
		c.log.Error("reading input", zap.Error(err))
		return subcommands.ExitFailure
	}
	sortFn(x)
	c.log.Debug("sorted", zap.String("algo", c.algo), zap.Int("n", len(x)))

	if c.out == "" {
		err = writeNumbers(os.Stdout, x)
	} else {
		err = writeNumbersAtomic(c.out, x)
	}
	if err != nil {
		c.log.Error("writing output", zap.Error(err))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// readNumbers parses one number per line. Blank lines are skipped.
func readNumbers(r io.Reader) ([]float64, error) {
	var x []float64
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, xerrors.Errorf("line %d: %w", line, err)
		}
		x = append(x, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return x, nil
}

func writeNumbers(w io.Writer, x []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range x {
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// writeNumbersAtomic replaces path with the numbers in x. Readers of path see
// either the old contents or the new ones.
func writeNumbersAtomic(path string, x []float64) error {
	t, err := renameio.TempFile("", path)
	if err != nil {
		return err
	}
	defer t.Cleanup()
	if err := writeNumbers(t, x); err != nil {
		return err
	}
	return t.CloseAtomicallyReplace()
}
