// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/pdf-extract/pkg/types"
)

// Native extracts the embedded text layer with a pure Go PDF parser. Scanned
// (image-only) pages come back without text.
type Native struct{}

// NewNative returns the pure Go extractor.
func NewNative() *Native {
	return &Native{}
}

func (n *Native) Name() string { return string(types.BackendNative) }

// Extract reads the whole file, closes it, and parses the bytes.
func (n *Native) Extract(ctx context.Context, path string) ([]Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parsePDF(data)
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading PDF %s: %w", path, err)
	}
	return data, nil
}

// parsePDF extracts text page by page. The parser panics on some malformed
// documents; those panics are returned as errors.
func parsePDF(data []byte) (pages []Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parsing PDF: %w", err)
	}

	n := r.NumPage()
	if n == 0 {
		return nil, ErrNoPages
	}

	pages = make([]Page, 0, n)
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, Page{Number: i})
			continue
		}

		fonts := make(map[string]*pdf.Font)
		for _, name := range p.Fonts() {
			f := p.Font(name)
			fonts[name] = &f
		}

		text, err := p.GetPlainText(fonts)
		if err != nil {
			return nil, fmt.Errorf("reading page %d: %w", i, err)
		}
		pages = append(pages, Page{Number: i, Text: text})
	}
	return pages, nil
}
