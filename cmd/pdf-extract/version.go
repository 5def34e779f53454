package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-extract/pkg/types"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pdf-extract version and compiled-in backends",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		backends := lo.Map(types.Backends(), func(b types.ExtractionBackend, _ int) string {
			return string(b)
		})
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pdf-extract %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "backends: %s\n", strings.Join(backends, ", "))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
