// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes the human-readable progress lines and the trailing
// machine-readable result block of a batch run. Callers that launch the
// converter as a subprocess locate ResultSentinel in stdout and parse the
// single JSON line that follows it, so the formats here are an API.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-extract/pkg/types"
)

// ResultSentinel precedes the JSON summary on stdout.
const ResultSentinel = "__RESULT_JSON__"

// NoFilesMessage is reported when the input directory holds no PDFs.
const NoFilesMessage = "No PDF files found in input folder."

// FatalPrefix starts every fatal error line written to stderr.
const FatalPrefix = "FATAL ERROR: "

// emptyRun is the informational record printed for a run with no candidates.
type emptyRun struct {
	Message string `json:"message"`
	*types.RunSummary
}

// Found prints the discovery count line.
func Found(w io.Writer, n int, dir string) {
	fmt.Fprintf(w, "Found %d PDF file(s) in %s\n", n, dir)
}

// Processing starts a per-file line; OK or Failed completes it.
func Processing(w io.Writer, name string) {
	fmt.Fprintf(w, "Processing: %s ... ", name)
}

// OK completes a per-file line for a converted file.
func OK(w io.Writer) {
	fmt.Fprintln(w, "OK")
}

// Failed completes a per-file line with the failure description.
func Failed(w io.Writer, err error) {
	fmt.Fprintf(w, "FAILED: %v\n", err)
}

// Done prints the final tally after the per-file lines.
func Done(w io.Writer, s *types.RunSummary) {
	fmt.Fprintf(w, "\nDone. Success: %d, Failed: %d\n", s.Success, s.Failed)
}

// WriteEmpty prints the single JSON line used when discovery finds nothing.
func WriteEmpty(w io.Writer, s *types.RunSummary) error {
	data, err := json.Marshal(emptyRun{Message: NoFilesMessage, RunSummary: s})
	if err != nil {
		return fmt.Errorf("marshaling empty run: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// WriteResult prints the sentinel line followed by the summary as one line
// of JSON. It must be the last thing written to stdout.
func WriteResult(w io.Writer, s *types.RunSummary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling run summary: %w", err)
	}
	_, err = fmt.Fprintf(w, "\n%s\n%s\n", ResultSentinel, data)
	return err
}

// ParseResult recovers the summary from captured stdout of a run. It is the
// inverse of WriteResult and is what a supervising process would use.
func ParseResult(stdout string) (*types.RunSummary, error) {
	idx := strings.LastIndex(stdout, ResultSentinel)
	if idx < 0 {
		return nil, fmt.Errorf("result sentinel %s not found in output", ResultSentinel)
	}
	var s types.RunSummary
	if err := json.Unmarshal([]byte(strings.TrimSpace(stdout[idx+len(ResultSentinel):])), &s); err != nil {
		return nil, fmt.Errorf("parsing result JSON: %w", err)
	}
	return &s, nil
}

// WriteFatal prints a fatal error line.
func WriteFatal(w io.Writer, err error) {
	fmt.Fprintf(w, "%s%v\n", FatalPrefix, err)
}

// WriteSummaryFile stores s at path as YAML when the extension is .yaml or
// .yml and as indented JSON otherwise. Parent directories are created.
func WriteSummaryFile(path string, s *types.RunSummary) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(s)
	default:
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating summary directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing summary %s: %w", path, err)
	}
	return nil
}
