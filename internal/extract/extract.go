// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns a PDF file into per-page plain text. Several
// backends implement Extractor: a pure Go parser, the poppler pdftotext
// tool, and pdftotext run inside a container.
package extract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pdiddy/pdf-extract/internal/container"
	"github.com/pdiddy/pdf-extract/pkg/types"
)

const (
	defaultPdftotextBin   = "pdftotext"
	defaultContainerImage = "pdftotext:latest"

	// pageBreak separates pages in pdftotext output.
	pageBreak = "\f"
)

var (
	// ErrNoPages is returned for a document that parses but has no pages.
	ErrNoPages = errors.New("document has no pages")

	// ErrUnknownBackend is returned by New for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown extraction backend")
)

// Page is the text of one page. Number is 1-based. Only an empty Text means
// the page has no extractable text; whitespace counts as text.
type Page struct {
	Number int
	Text   string
}

// HasText reports whether the page carries any extracted text.
func (p Page) HasText() bool {
	return p.Text != ""
}

// Extractor reads the PDF at path and returns its pages in order.
type Extractor interface {
	// Name identifies the backend in logs and run history.
	Name() string

	Extract(ctx context.Context, path string) ([]Page, error)
}

// New builds the extractor selected by cfg.Backend. An empty backend
// selects the native parser.
func New(ctx context.Context, cfg types.ExtractionConfig) (Extractor, error) {
	switch cfg.Backend {
	case types.BackendNative, "":
		return NewNative(), nil
	case types.BackendPdftotext:
		return NewPdftotext(cfg.PdftotextBin), nil
	case types.BackendContainer:
		rt, err := container.DetectRuntime(ctx)
		if err != nil {
			return nil, err
		}
		return NewContainer(ctx, rt, cfg.ContainerImage)
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownBackend, cfg.Backend, backendList())
	}
}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// Check reports whether backend can run on this machine. It returns nil
// when the backend is usable, or an error describing what is missing.
func Check(ctx context.Context, cfg types.ExtractionConfig, backend types.ExtractionBackend) error {
	switch backend {
	case types.BackendNative:
		return nil
	case types.BackendPdftotext:
		bin := cfg.PdftotextBin
		if bin == "" {
			bin = defaultPdftotextBin
		}
		if _, err := lookPath(bin); err != nil {
			return fmt.Errorf("%s not found on PATH: %w", bin, err)
		}
		return nil
	case types.BackendContainer:
		rt, err := container.DetectRuntime(ctx)
		if err != nil {
			return err
		}
		image := cfg.ContainerImage
		if image == "" {
			image = defaultContainerImage
		}
		return rt.ImageExists(ctx, image)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func backendList() string {
	names := make([]string, 0, len(types.Backends()))
	for _, b := range types.Backends() {
		names = append(names, string(b))
	}
	return strings.Join(names, ", ")
}

// splitPages cuts form-feed separated text into pages. pdftotext ends every
// page, including the last, with a form feed, so a trailing blank segment
// is dropped. Page text is kept as produced, whitespace included.
func splitPages(out string) ([]Page, error) {
	parts := strings.Split(out, pageBreak)
	if len(parts) > 1 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 1 && strings.TrimSpace(parts[0]) == "" && !strings.Contains(out, pageBreak) {
		return nil, ErrNoPages
	}

	pages := make([]Page, len(parts))
	for i, part := range parts {
		pages[i] = Page{Number: i + 1, Text: part}
	}
	return pages, nil
}
