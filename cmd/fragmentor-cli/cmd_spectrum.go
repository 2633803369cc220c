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

func newSpectrumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Record and query spectra",
	}
	cmd.AddCommand(spectrumAddCmd())
	cmd.AddCommand(spectrumGetCmd())
	cmd.AddCommand(spectrumDeleteCmd())
	cmd.AddCommand(spectrumListCmd())
	cmd.AddCommand(spectrumPickCmd())
	return cmd
}

// readSpectrumFile reads a spectrum definition from a JSON file, or stdin
// when the path is "-".
func readSpectrumFile(path string) (*client.CreateSpectrumRequest, error) {
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
	var req client.CreateSpectrumRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func spectrumAddCmd() *cobra.Command {
	var file, experiment string
	cmd := &cobra.Command{
		Use:   "add <molecule-id>",
		Short: "Record a spectrum from a JSON definition",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req, err := readSpectrumFile(file)
			if err != nil {
				fatal("read spectrum", err)
			}
			if experiment != "" {
				req.Experiment = experiment
			}
			sp, err := apiClient.Spectra.Create(context.Background(), args[0], req)
			if err != nil {
				fatal("add spectrum", err)
			}
			output(sp, sp.ID)
		},
	}
	cmd.Flags().StringVar(&file, "file", "-", "Path to spectrum JSON (use - for stdin)")
	cmd.Flags().StringVar(&experiment, "experiment", "", "Experiment type (e.g. BB, DEPT, HSQC, HMBC)")
	return cmd
}

func spectrumGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a spectrum by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			sp, err := apiClient.Spectra.Get(context.Background(), args[0])
			if err != nil {
				fatal("get spectrum", err)
			}
			output(sp, sp.ID)
		},
	}
}

func spectrumDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a spectrum",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Spectra.Delete(context.Background(), args[0]); err != nil {
				fatal("delete spectrum", err)
			}
			fmt.Println("deleted")
		},
	}
}

func spectrumListCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list <molecule-id>",
		Short: "List spectra of a molecule",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if limit < 0 || offset < 0 {
				fmt.Fprintf(os.Stderr, "Error: --limit and --offset must be non-negative\n")
				os.Exit(1)
			}
			spectra, _, err := apiClient.Spectra.List(context.Background(), args[0], limit, offset)
			if err != nil {
				fatal("list spectra", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "NAME", "EXPERIMENT", "SIGNALS"}
				var rows [][]string
				for _, sp := range spectra {
					rows = append(rows, []string{sp.ID, sp.Name, sp.Experiment, strconv.Itoa(len(sp.Signals))})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, sp := range spectra {
					fmt.Println(sp.ID)
				}
				return
			}
			output(spectra, "")
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Offset")
	return cmd
}

func spectrumPickCmd() *cobra.Command {
	var (
		shift     float64
		nucleus   string
		tolerance float64
		closest   bool
	)
	cmd := &cobra.Command{
		Use:   "pick <id>",
		Short: "Find signals near a chemical shift",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.PickRequest{
				Shift:     shift,
				Nucleus:   nucleus,
				Tolerance: tolerance,
				Closest:   closest,
			}
			signals, err := apiClient.Spectra.Pick(context.Background(), args[0], req)
			if err != nil {
				fatal("pick signals", err)
			}
			output(signals, "")
		},
	}
	cmd.Flags().Float64Var(&shift, "shift", 0, "Chemical shift in ppm")
	cmd.Flags().StringVar(&nucleus, "nucleus", "13C", "Nucleus axis (1H, 13C, 15N, 31P)")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0.5, "Shift tolerance in ppm")
	cmd.Flags().BoolVar(&closest, "closest", false, "Return only the closest signal")
	cmd.MarkFlagRequired("shift") //nolint:errcheck
	return cmd
}
