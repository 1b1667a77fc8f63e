// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/parkernels/par"
	"github.com/ajroetker/parkernels/par/contrib/gen"
	"github.com/ajroetker/parkernels/par/contrib/matrix"
	"github.com/ajroetker/parkernels/par/contrib/workerpool"
)

func newMultiplyCmd(a *app) *cobra.Command {
	var pooled bool
	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "Run the parallel row transform C[j][i] = A[j][i]*B[i][j]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMultiply(a, pooled)
		},
	}
	addKernelFlags(cmd.Flags(), &a.opts, 1024)
	cmd.Flags().BoolVar(&pooled, "pooled", false, "Run on a worker pool instead of one goroutine per chunk")
	return cmd
}

func runMultiply(a *app, pooled bool) error {
	o := a.opts
	if o.size < 0 {
		return fmt.Errorf("invalid size %d", o.size)
	}
	g := gen.New(o.seed)
	x, err := matrix.FromRows(gen.Rows[float64](g, o.size))
	if err != nil {
		return err
	}
	y, err := matrix.FromRows(gen.Rows[float64](g, o.size))
	if err != nil {
		return err
	}

	workers := o.workers
	if workers <= 0 {
		workers = par.NumProcs()
	}
	mode := "threads"
	var got *matrix.Matrix[float64]
	start := time.Now()
	if pooled {
		mode = "pooled"
		pool := workerpool.New(workers, workerpool.WithLogger(a.logger))
		start = time.Now()
		got, err = matrix.PooledMultiply(pool, x, y)
		err = errors.Join(err, pool.Shutdown())
	} else {
		got, err = matrix.ParallelMultiplyWorkers(x, y, workers)
	}
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("parallel multiply: %w", err)
	}
	fmt.Fprintf(a.out, "parallel   multiply n=%d workers=%d mode=%s  %v\n", o.size, workers, mode, elapsed)

	if !o.check {
		return nil
	}
	start = time.Now()
	want, err := matrix.Multiply(x, y)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "sequential multiply n=%d  %v\n", o.size, time.Since(start))
	if !got.Equal(want) {
		return errors.New("parallel multiply result differs from sequential multiply")
	}
	fmt.Fprintln(a.out, "check ok")
	return nil
}
