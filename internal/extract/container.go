// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/pdiddy/pdf-extract/internal/container"
	"github.com/pdiddy/pdf-extract/pkg/types"
)

// Container extracts text by piping each PDF through an image that behaves
// like pdftotext reading stdin: form-feed separated UTF-8 pages on stdout.
type Container struct {
	runtime container.Runtime
	image   string
}

// NewContainer returns an extractor running image on rt. It fails when the
// image is not present locally. An empty image selects pdftotext:latest.
func NewContainer(ctx context.Context, rt container.Runtime, image string) (*Container, error) {
	if image == "" {
		image = defaultContainerImage
	}
	if err := rt.ImageExists(ctx, image); err != nil {
		return nil, fmt.Errorf("extraction image not available in %s: %w", rt.Name(), err)
	}
	return &Container{runtime: rt, image: image}, nil
}

func (c *Container) Name() string { return string(types.BackendContainer) }

func (c *Container) Extract(ctx context.Context, path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := c.runtime.Run(ctx, c.image, f, &out); err != nil {
		return nil, fmt.Errorf("extracting %s with %s: %w", path, c.image, err)
	}

	pages, err := splitPages(out.String())
	if err != nil {
		return nil, fmt.Errorf("%s output for %s: %w", c.image, path, err)
	}
	return pages, nil
}
