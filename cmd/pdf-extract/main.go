// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-extract CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-extract/internal/report"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "PDF_EXTRACT"

// rootCmd converts every PDF in the input folder. Subcommands cover
// diagnostics and run history.
var rootCmd = &cobra.Command{
	Use:   "pdf-extract",
	Short: "Batch-convert PDF files to plain text",
	Long: `pdf-extract converts every PDF in an input folder into a .txt file in an
output folder, one text file per PDF. Each page is written under a
"--- Page N ---" label; pages without extractable text get a marker.

Progress is printed per file. The run ends with a __RESULT_JSON__ line
followed by a one-line JSON summary for programs that drive the converter.

Folders default to ../input_PDF and ../output_extract next to the
executable.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf-extract.yaml or ~/.config/pdf-extract/pdf-extract.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "diagnostic log level on stderr: debug, info, warn, error (default warn)")
	rootCmd.PersistentFlags().String("history-path", "", "run history database (default: <user config dir>/pdf-extract/history.db)")

	rootCmd.Flags().String("input", "", "folder containing PDF files (default ../input_PDF next to the executable)")
	rootCmd.Flags().String("output", "", "folder for extracted text files (default ../output_extract next to the executable)")
	rootCmd.Flags().String("backend", "", "extraction backend: native, pdftotext, or container (default native)")
	rootCmd.Flags().String("summary-file", "", "also write the run summary to this file (.yaml/.yml for YAML, JSON otherwise)")
	rootCmd.Flags().Bool("history", false, "record this run in the history database")

	bindFlags(viper.GetViper(), rootCmd)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-extract"))
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
}

// execute runs the command line args against rootCmd with the given output
// streams and returns the process exit status. A fatal error is reported on
// stderr only.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		report.WriteFatal(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
