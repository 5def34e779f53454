// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the batch PDF-to-text driver: it discovers PDFs
// in a directory, extracts each one through a pluggable extract.Extractor,
// writes one .txt file per PDF, and accumulates a run summary.
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/pdf-extract/internal/extract"
	"github.com/pdiddy/pdf-extract/internal/report"
	"github.com/pdiddy/pdf-extract/pkg/types"
)

// Runner converts every PDF of a request, one file at a time.
type Runner struct {
	extractor extract.Extractor
	out       io.Writer
	log       *zap.Logger
}

// NewRunner returns a Runner writing progress lines to out. A nil logger
// disables diagnostics.
func NewRunner(ex extract.Extractor, out io.Writer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{extractor: ex, out: out, log: log}
}

// Run processes all candidates of req. It returns an error only for fatal
// setup failures (missing input directory, output directory not creatable);
// per-file failures are recorded in the summary and do not stop the batch.
func (r *Runner) Run(ctx context.Context, req types.ConversionRequest) (*types.RunSummary, error) {
	inputDir, err := filepath.Abs(req.InputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving input folder %s: %w", req.InputDir, err)
	}
	outputDir, err := filepath.Abs(req.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output folder %s: %w", req.OutputDir, err)
	}

	candidates, err := Discover(inputDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output folder %s: %w", outputDir, err)
	}

	summary := types.NewRunSummary()
	if len(candidates) == 0 {
		r.log.Info("no PDF files found", zap.String("input", inputDir))
		if err := report.WriteEmpty(r.out, summary); err != nil {
			return nil, err
		}
		return summary, nil
	}

	report.Found(r.out, len(candidates), inputDir)

	for _, c := range candidates {
		report.Processing(r.out, c.Name)

		start := time.Now()
		pages, err := r.ConvertFile(ctx, c, outputDir)
		if err != nil {
			report.Failed(r.out, err)
			r.log.Warn("conversion failed",
				zap.String("pdf", c.Path),
				zap.String("backend", r.extractor.Name()),
				zap.Error(err))
			summary.Record(types.FileResult{
				PDF:    c.Name,
				TXT:    c.OutputName,
				Status: types.StatusFailed,
				Error:  err.Error(),
			})
			continue
		}

		report.OK(r.out)
		r.log.Debug("converted",
			zap.String("pdf", c.Path),
			zap.Int("pages", pages),
			zap.Duration("elapsed", time.Since(start)))
		summary.Record(types.FileResult{
			PDF:    c.Name,
			TXT:    c.OutputName,
			Status: types.StatusSuccess,
		})
	}

	report.Done(r.out, summary)
	return summary, nil
}

// ConvertFile extracts c and writes the rendered text into outputDir,
// returning the number of pages written.
func (r *Runner) ConvertFile(ctx context.Context, c Candidate, outputDir string) (int, error) {
	pages, err := r.extractor.Extract(ctx, c.Path)
	if err != nil {
		return 0, err
	}

	if err := writeText(filepath.Join(outputDir, c.OutputName), RenderPages(pages)); err != nil {
		return 0, err
	}
	return len(pages), nil
}

// writeText creates or truncates path and writes text as UTF-8. The file is
// closed before returning and a failed close is reported.
func writeText(path, text string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if _, err := io.WriteString(f, text); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
