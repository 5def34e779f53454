// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pdiddy/pdf-extract/pkg/types"
)

// commandRunner runs an external program; swapped out in tests.
type commandRunner func(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error

func runCommand(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Pdftotext extracts text with the poppler pdftotext command.
type Pdftotext struct {
	bin string
	run commandRunner
}

// NewPdftotext creates a Pdftotext extractor. If bin is empty, "pdftotext"
// is looked up on PATH.
func NewPdftotext(bin string) *Pdftotext {
	if bin == "" {
		bin = defaultPdftotextBin
	}
	return &Pdftotext{bin: bin, run: runCommand}
}

func (p *Pdftotext) Name() string { return string(types.BackendPdftotext) }

// Extract runs pdftotext with UTF-8 output to stdout and splits the result
// on form feeds.
func (p *Pdftotext) Extract(ctx context.Context, path string) ([]Page, error) {
	args := []string{"-enc", "UTF-8", path, "-"}

	var stdout, stderr bytes.Buffer
	if err := p.run(ctx, p.bin, args, &stdout, &stderr); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("pdftotext failed for %s: %w: %s", path, err, msg)
		}
		return nil, fmt.Errorf("pdftotext failed for %s: %w", path, err)
	}

	pages, err := splitPages(stdout.String())
	if err != nil {
		return nil, fmt.Errorf("pdftotext output for %s: %w", path, err)
	}
	return pages, nil
}
