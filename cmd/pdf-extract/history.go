// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-extract/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded conversion runs",
	Long: `History reads the run database written when conversion is started with
--history (or history.enabled in the config file).`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-20s  %-9s  %-9s  %5s  %7s  %6s  %s\n",
		"ID", "Started", "Status", "Backend", "Total", "Success", "Failed", "Input")
	fmt.Fprintln(out, strings.Repeat("-", 120))
	for _, r := range runs {
		fmt.Fprintf(out, "%-36s  %-20s  %-9s  %-9s  %5d  %7d  %6d  %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Status, r.Backend,
			r.Summary.Total, r.Summary.Success, r.Summary.Failed, r.InputDir)
	}
	return nil
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print one run with its per-file results",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Export(cmd.Context(), args[0], format, cmd.OutOrStdout())
}

// --- shared helpers ---

func openHistory() (*history.Store, error) {
	path := viper.GetString(keyHistoryPath)
	if path == "" {
		path = defaultHistoryPath()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no history database at %s (run with --history first): %w", path, err)
	}
	return history.Open(path)
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyShowCmd.Flags().String("format", "yaml", "output format: yaml or json")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)

	rootCmd.AddCommand(historyCmd)
}
