// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options are the flags shared by every kernel sub-command.
type options struct {
	size    int
	workers int
	seed    uint64
	check   bool
	verbose bool
}

type app struct {
	opts   options
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:          "parkern",
		Short:        "Benchmark the parallel sort and matrix kernels",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.opts.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newSortCmd(a), newMultiplyCmd(a), newInfoCmd(a))
	return root
}

// addKernelFlags registers the flags common to sort and multiply.
func addKernelFlags(fs *pflag.FlagSet, o *options, defaultSize int) {
	fs.IntVarP(&o.size, "size", "n", defaultSize, "Input size (elements for sort, rows for multiply)")
	fs.IntVarP(&o.workers, "workers", "w", 0, "Number of workers (0 = detected processors)")
	fs.Uint64Var(&o.seed, "seed", 1, "Random seed for the generated input")
	fs.BoolVar(&o.check, "check", false, "Verify the parallel result against the sequential kernel")
}
