//go:build mage

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/magefile/mage/mg"

	"github.com/pdiddy/pdf-extract/internal/convert"
	"github.com/pdiddy/pdf-extract/internal/extract"
	"github.com/pdiddy/pdf-extract/internal/report"
	"github.com/pdiddy/pdf-extract/pkg/types"
)

// Convert runs the native backend over input_PDF/ into output_extract/ in the
// project root.
func Convert() error {
	mg.Deps(Init)

	req := types.ConversionRequest{
		InputDir:  types.DefaultInputDirName,
		OutputDir: types.DefaultOutputDirName,
	}

	runner := convert.NewRunner(extract.NewNative(), os.Stdout, nil)
	summary, err := runner.Run(context.Background(), req)
	if err != nil {
		return err
	}
	if err := report.WriteResult(os.Stdout, summary); err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", summary.Failed)
	}
	return nil
}
