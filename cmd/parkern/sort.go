// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/parkernels/par"
	"github.com/ajroetker/parkernels/par/contrib/gen"
	"github.com/ajroetker/parkernels/par/contrib/sort"
	"github.com/ajroetker/parkernels/par/contrib/workerpool"
)

func newSortCmd(a *app) *cobra.Command {
	var (
		threshold int
		elemType  string
	)
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort random data with the pooled parallel quicksort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch elemType {
			case "int32":
				return runSort[int32](a, threshold)
			case "int64":
				return runSort[int64](a, threshold)
			case "float32":
				return runSort[float32](a, threshold)
			case "float64":
				return runSort[float64](a, threshold)
			}
			return fmt.Errorf("unsupported element type %q", elemType)
		},
	}
	addKernelFlags(cmd.Flags(), &a.opts, 1_000_000)
	cmd.Flags().IntVar(&threshold, "threshold", 0, "Region length sorted inline (0 = PARK_SORT_THRESHOLD or 100000)")
	cmd.Flags().StringVarP(&elemType, "type", "t", "int64", "Element type: int32, int64, float32 or float64")
	return cmd
}

func runSort[T par.Real](a *app, threshold int) error {
	o := a.opts
	if o.size < 0 {
		return fmt.Errorf("invalid size %d", o.size)
	}
	data := gen.Slice[T](gen.New(o.seed), o.size)
	var want []T
	if o.check {
		want = slices.Clone(data)
	}

	pool := workerpool.New(o.workers, workerpool.WithLogger(a.logger))
	start := time.Now()
	err := sort.ParallelQuicksort(data, sort.WithPool(pool), sort.WithThreshold(threshold))
	elapsed := time.Since(start)
	err = errors.Join(err, pool.Shutdown())
	stats := pool.Stats()
	a.logger.Debug("pool stats", "workers", stats.Workers, "jobs", stats.Submitted, "completed", stats.Completed, "failed", stats.Failed)
	if err != nil {
		return fmt.Errorf("parallel sort: %w", err)
	}
	fmt.Fprintf(a.out, "parallel   sort  n=%d workers=%d  %v\n", o.size, stats.Workers, elapsed)

	if !o.check {
		return nil
	}
	start = time.Now()
	sort.Quicksort(want)
	fmt.Fprintf(a.out, "sequential sort  n=%d            %v\n", o.size, time.Since(start))
	if !sort.IsSorted(data) || !slices.Equal(data, want) {
		return errors.New("parallel sort result differs from sequential sort")
	}
	fmt.Fprintln(a.out, "check ok")
	return nil
}
