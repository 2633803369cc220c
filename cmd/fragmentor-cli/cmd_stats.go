package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show molecule and fragment counts",
		Run: func(cmd *cobra.Command, args []string) {
			stats, err := apiClient.Stats(context.Background())
			if err != nil {
				fatal("get stats", err)
			}
			if flagFmt == "table" {
				formatTable([]string{"MOLECULES", "FRAGMENTS"}, [][]string{{
					fmt.Sprintf("%d", stats.Molecules),
					fmt.Sprintf("%d", stats.Fragments),
				}})
				return
			}
			output(stats, "")
		},
	}
}
