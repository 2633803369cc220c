package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spectrakit/fragmentor/client"
)

func newFragmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fragment",
		Short: "Extract and manage fragments",
	}
	cmd.AddCommand(fragmentExtractCmd())
	cmd.AddCommand(fragmentGetCmd())
	cmd.AddCommand(fragmentDeleteCmd())
	cmd.AddCommand(fragmentListCmd())
	return cmd
}

func fragmentExtractCmd() *cobra.Command {
	var (
		root         int
		sphere       int
		excluded     []int
		placeholders bool
		persist      bool
	)
	cmd := &cobra.Command{
		Use:   "extract <molecule-id>",
		Short: "Extract a fragment rooted at an atom",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.ExtractFragmentRequest{
				RootAtom:     root,
				MaxSphere:    sphere,
				Excluded:     excluded,
				Placeholders: placeholders,
				Persist:      persist,
			}
			f, err := apiClient.Fragments.Extract(context.Background(), args[0], req)
			if err != nil {
				fatal("extract fragment", err)
			}
			output(f, f.ID)
		},
	}
	cmd.Flags().IntVar(&root, "root", 0, "Root atom index")
	cmd.Flags().IntVar(&sphere, "sphere", 2, "Maximum bond distance from the root")
	cmd.Flags().IntSliceVar(&excluded, "exclude", nil, "Atom indices to exclude")
	cmd.Flags().BoolVar(&placeholders, "placeholders", false, "Replace trimmed neighbors with placeholder atoms")
	cmd.Flags().BoolVar(&persist, "persist", false, "Store the fragment on the server")
	return cmd
}

func fragmentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a stored fragment by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			f, err := apiClient.Fragments.Get(context.Background(), args[0])
			if err != nil {
				fatal("get fragment", err)
			}
			output(f, f.ID)
		},
	}
}

func fragmentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored fragment",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Fragments.Delete(context.Background(), args[0]); err != nil {
				fatal("delete fragment", err)
			}
			fmt.Println("deleted")
		},
	}
}

func fragmentListCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list <molecule-id>",
		Short: "List stored fragments of a molecule",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if limit < 0 || offset < 0 {
				fmt.Fprintf(os.Stderr, "Error: --limit and --offset must be non-negative\n")
				os.Exit(1)
			}
			frags, _, err := apiClient.Fragments.List(context.Background(), args[0], limit, offset)
			if err != nil {
				fatal("list fragments", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "ROOT", "SPHERE", "ATOMS", "BONDS"}
				var rows [][]string
				for _, f := range frags {
					rows = append(rows, []string{
						f.ID,
						strconv.Itoa(f.RootAtom),
						strconv.Itoa(f.MaxSphere),
						strconv.Itoa(len(f.Atoms)),
						strconv.Itoa(len(f.Bonds)),
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, f := range frags {
					fmt.Println(f.ID)
				}
				return
			}
			output(frags, "")
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Offset")
	return cmd
}
