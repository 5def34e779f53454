// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-extract/pkg/types"
)

// Configuration keys. Flags, PDF_EXTRACT_* environment variables and the
// config file all resolve through these.
const (
	keyInput          = "input"
	keyOutput         = "output"
	keyBackend        = "backend"
	keyPdftotextBin   = "pdftotext.bin"
	keyContainerImage = "container.image"
	keySummaryFile    = "summary_file"
	keyHistory        = "history.enabled"
	keyHistoryPath    = "history.path"
	keyLogLevel       = "log.level"
)

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"input":        keyInput,
	"output":       keyOutput,
	"backend":      keyBackend,
	"summary-file": keySummaryFile,
	"history":      keyHistory,
	"history-path": keyHistoryPath,
	"log-level":    keyLogLevel,
}

// bindFlags binds every known flag defined on cmd (local or persistent)
// to its configuration key in v.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			f = cmd.PersistentFlags().Lookup(name)
		}
		if f == nil {
			continue
		}
		_ = v.BindPFlag(key, f)
	}
}

// executableDir is the anchor for default folders. It falls back to the
// working directory when the executable path cannot be resolved.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// defaultHistoryPath places the history database in the user config dir.
func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".pdf-extract", "history.db")
	}
	return filepath.Join(dir, "pdf-extract", "history.db")
}

// loadRunConfig resolves the run configuration from v. Folders not set
// anywhere default relative to anchor.
func loadRunConfig(v *viper.Viper, anchor string) (types.RunConfig, error) {
	req := types.DefaultConversionRequest(anchor).
		WithOverrides(v.GetString(keyInput), v.GetString(keyOutput))

	backend := types.ExtractionBackend(v.GetString(keyBackend))
	if backend == "" {
		backend = types.BackendNative
	}
	if !knownBackend(backend) {
		return types.RunConfig{}, fmt.Errorf("unknown backend %q: use native, pdftotext, or container", backend)
	}

	historyPath := v.GetString(keyHistoryPath)
	if historyPath == "" {
		historyPath = defaultHistoryPath()
	}

	return types.RunConfig{
		Request: req,
		Extraction: types.ExtractionConfig{
			Backend:        backend,
			PdftotextBin:   v.GetString(keyPdftotextBin),
			ContainerImage: v.GetString(keyContainerImage),
		},
		History: types.HistoryConfig{
			Enabled: v.GetBool(keyHistory),
			Path:    historyPath,
		},
		SummaryFile: v.GetString(keySummaryFile),
		LogLevel:    v.GetString(keyLogLevel),
	}, nil
}

func knownBackend(b types.ExtractionBackend) bool {
	for _, known := range types.Backends() {
		if b == known {
			return true
		}
	}
	return false
}
