package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Flags shared by every command. Set flags override the config file.
var (
	configPath string
	dataDir    string
	logLevel   string
	workers    int
)

func main() {
	root := &cobra.Command{
		Use:           "curator",
		Short:         "Curation weights and content payouts",
		Long:          "Compute curation weights and content payouts from a chain state database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Chain state directory (overrides config)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	root.PersistentFlags().IntVarP(&workers, "workers", "w", -1, "Parallel builds for replay, 0 for unbounded (overrides config)")

	root.AddCommand(&cobra.Command{
		Use:   "import [file]",
		Short: "Load a state snapshot",
		Long:  "Verify a compressed state snapshot and write its records into the database.",
		Args:  cobra.ExactArgs(1),
		RunE:  importcmd,
	})

	root.AddCommand(&cobra.Command{
		Use:   "export [file]",
		Short: "Write a state snapshot",
		Long:  "Write a compressed, checksummed snapshot of the chain state to a file.",
		Args:  cobra.ExactArgs(1),
		RunE:  exportcmd,
	})

	curation := &cobra.Command{
		Use:   "curation [content-id]",
		Short: "Print the curation weights of a content",
		Long:  "Fold the votes of a content in canonical order and print each voter's curation weight.",
		Args:  cobra.ExactArgs(1),
		RunE:  curationcmd,
	}
	curation.Flags().BoolVarP(&fullCuration, "full", "f", false, "Include zero-weight votes and paid-out content")
	root.AddCommand(curation)

	root.AddCommand(&cobra.Command{
		Use:   "payout [content-id]",
		Short: "Print the payout of a content",
		Long:  "Compute how the reward of a content divides between author, curators, beneficiaries and the fund.",
		Args:  cobra.ExactArgs(1),
		RunE:  payoutcmd,
	})

	root.AddCommand(&cobra.Command{
		Use:   "replay",
		Short: "Build curation for every content",
		Long:  "Build the curation result of every content in parallel and print its digest, for comparison across nodes.",
		Args:  cobra.NoArgs,
		RunE:  replaycmd,
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
