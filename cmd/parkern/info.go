// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/parkernels/par"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print processor and configuration details",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			features := par.Features()
			if len(features) == 0 {
				features = []string{"none"}
			}
			fmt.Fprintf(a.out, "arch:           %s\n", par.Arch())
			fmt.Fprintf(a.out, "cpus:           %d\n", runtime.NumCPU())
			fmt.Fprintf(a.out, "gomaxprocs:     %d\n", runtime.GOMAXPROCS(0))
			fmt.Fprintf(a.out, "workers:        %d\n", par.NumProcs())
			fmt.Fprintf(a.out, "sort threshold: %d\n", par.SortThreshold())
			fmt.Fprintf(a.out, "no parallel:    %t\n", par.NoParallelEnv())
			fmt.Fprintf(a.out, "features:       %s\n", strings.Join(features, " "))
		},
	}
}
