package main

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "born-find",
		Short:        "Locate the last occurrence of values in integer tensors",
		SilenceUsage: true,
	}

	root.AddCommand(newVersionCmd(), newFindCmd(), newTokensCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and SIMD target",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "born-find %s (simd: %s, %d-byte vectors)\n",
				version, hwy.CurrentName(), hwy.CurrentWidth())
		},
	}
}
