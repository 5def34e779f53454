// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "path/filepath"

const (
	// DefaultInputDirName is the input directory name, resolved as a sibling
	// of the anchor directory.
	DefaultInputDirName = "input_PDF"

	// DefaultOutputDirName is the output directory name, resolved as a
	// sibling of the anchor directory.
	DefaultOutputDirName = "output_extract"
)

// ConversionRequest names the directories for one batch run. It is built
// once at startup and not modified afterwards.
type ConversionRequest struct {
	// InputDir is the directory scanned for PDF files.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives one .txt file per converted PDF.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// DefaultConversionRequest returns the request used when no directories are
// configured: ../input_PDF and ../output_extract relative to anchor, which
// is normally the directory holding the executable.
func DefaultConversionRequest(anchor string) ConversionRequest {
	return ConversionRequest{
		InputDir:  filepath.Join(anchor, "..", DefaultInputDirName),
		OutputDir: filepath.Join(anchor, "..", DefaultOutputDirName),
	}
}

// WithOverrides returns a copy of r with any non-empty argument replacing
// the corresponding directory.
func (r ConversionRequest) WithOverrides(inputDir, outputDir string) ConversionRequest {
	if inputDir != "" {
		r.InputDir = inputDir
	}
	if outputDir != "" {
		r.OutputDir = outputDir
	}
	return r
}

// ExtractionBackend identifies the PDF text extraction tool.
type ExtractionBackend string

const (
	BackendNative    ExtractionBackend = "native"
	BackendPdftotext ExtractionBackend = "pdftotext"
	BackendContainer ExtractionBackend = "container"
)

// Backends lists every supported extraction backend in display order.
func Backends() []ExtractionBackend {
	return []ExtractionBackend{BackendNative, BackendPdftotext, BackendContainer}
}

// ExtractionConfig holds settings for the extraction backends.
type ExtractionConfig struct {
	// Backend selects the extraction tool: native, pdftotext, or container.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// PdftotextBin is the pdftotext executable (default "pdftotext").
	PdftotextBin string `json:"pdftotext_bin" yaml:"pdftotext_bin"`

	// ContainerImage is the image run by the container backend
	// (default "pdftotext:latest"). It must read a PDF on stdin and write
	// form-feed separated pages to stdout.
	ContainerImage string `json:"container_image" yaml:"container_image"`
}

// HistoryConfig controls the optional run history database.
type HistoryConfig struct {
	// Enabled turns on recording of each run.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file.
	Path string `json:"path" yaml:"path"`
}

// RunConfig groups everything a single invocation needs.
type RunConfig struct {
	Request    ConversionRequest `json:"request" yaml:"request"`
	Extraction ExtractionConfig  `json:"extraction" yaml:"extraction"`
	History    HistoryConfig     `json:"history" yaml:"history"`

	// SummaryFile, when set, receives a copy of the run summary as YAML or
	// JSON depending on its extension.
	SummaryFile string `json:"summary_file,omitempty" yaml:"summary_file,omitempty"`

	// LogLevel is the zap level for diagnostics on stderr (default "warn").
	LogLevel string `json:"log_level" yaml:"log_level"`
}
