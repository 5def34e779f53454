// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-extract/internal/extract"
	"github.com/pdiddy/pdf-extract/pkg/types"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List extraction backends and whether they can run here",
	Long: `Backends checks each extraction backend: native always works, pdftotext
needs the poppler binary on PATH, and container needs docker or podman with
the extraction image pulled.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := types.ExtractionConfig{
			PdftotextBin:   viper.GetString(keyPdftotextBin),
			ContainerImage: viper.GetString(keyContainerImage),
		}
		out := cmd.OutOrStdout()
		for _, b := range types.Backends() {
			if err := extract.Check(cmd.Context(), cfg, b); err != nil {
				fmt.Fprintf(out, "%-10s  unavailable: %v\n", b, err)
				continue
			}
			fmt.Fprintf(out, "%-10s  available\n", b)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
