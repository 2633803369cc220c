package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spectrakit/fragmentor/client"
)

func newMoleculeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "molecule",
		Short: "Manage molecules",
	}
	cmd.AddCommand(moleculeCreateCmd())
	cmd.AddCommand(moleculeGetCmd())
	cmd.AddCommand(moleculeDeleteCmd())
	cmd.AddCommand(moleculeListCmd())
	return cmd
}

// readMoleculeFile reads a molecule definition from a JSON file, or stdin
// when the path is "-".
func readMoleculeFile(path string) (*client.CreateMoleculeRequest, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	var req client.CreateMoleculeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func moleculeCreateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a molecule from a JSON atom/bond definition",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req, err := readMoleculeFile(file)
			if err != nil {
				fatal("read molecule", err)
			}
			req.Name = args[0]
			m, err := apiClient.Molecules.Create(context.Background(), req)
			if err != nil {
				fatal("create molecule", err)
			}
			output(m, m.ID)
		},
	}
	cmd.Flags().StringVar(&file, "file", "-", "Path to molecule JSON (use - for stdin)")
	return cmd
}

func moleculeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a molecule by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			m, err := apiClient.Molecules.Get(context.Background(), args[0])
			if err != nil {
				fatal("get molecule", err)
			}
			output(m, m.ID)
		},
	}
}

func moleculeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a molecule and its fragments and spectra",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Molecules.Delete(context.Background(), args[0]); err != nil {
				fatal("delete molecule", err)
			}
			fmt.Println("deleted")
		},
	}
}

func moleculeListCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List molecules",
		Run: func(cmd *cobra.Command, args []string) {
			if limit < 0 {
				fmt.Fprintf(os.Stderr, "Error: --limit must be non-negative\n")
				os.Exit(1)
			}
			if offset < 0 {
				fmt.Fprintf(os.Stderr, "Error: --offset must be non-negative\n")
				os.Exit(1)
			}
			mols, _, err := apiClient.Molecules.List(context.Background(), limit, offset)
			if err != nil {
				fatal("list molecules", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "NAME", "ATOMS", "BONDS"}
				var rows [][]string
				for _, m := range mols {
					rows = append(rows, []string{m.ID, m.Name, strconv.Itoa(m.AtomCount), strconv.Itoa(m.BondCount)})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, m := range mols {
					fmt.Println(m.ID)
				}
				return
			}
			output(mols, "")
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Offset")
	return cmd
}
