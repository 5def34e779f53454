//go:build mage

// Package main contains Mage build targets for pdf-extract developer tooling.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/sh"

	"github.com/pdiddy/pdf-extract/internal/convert"
)

// projectDirs lists the working folders used by Convert.
var projectDirs = []string{
	"input_PDF",
	"output_extract",
}

// Init creates the input and output folders in the project root.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project folders initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "pdf-extract"
	cmdPkg  = "./cmd/pdf-extract"
)

// Build compiles the CLI binary into bin/. Run from bin/, the binary finds
// ../input_PDF and ../output_extract without flags.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version()
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests for every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// version describes the working tree for the binary's version string.
func version() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || out == "" {
		return "dev"
	}
	return out
}

// Stats prints Go line counts and how many PDFs in input_PDF/ still lack a
// text file in output_extract/.
func Stats() error {
	prodLines, testLines, err := countGoLines(".")
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)

	candidates, err := convert.Discover(projectDirs[0])
	if errors.Is(err, convert.ErrDirectoryNotFound) {
		fmt.Println("No input folder; run mage init.")
		return nil
	}
	if err != nil {
		return err
	}

	pending := 0
	for _, c := range candidates {
		if _, err := os.Stat(filepath.Join(projectDirs[1], c.OutputName)); err != nil {
			pending++
		}
	}
	fmt.Printf("PDFs in %s:                 %d\n", projectDirs[0], len(candidates))
	fmt.Printf("PDFs without text output:       %d\n", pending)
	return nil
}

// countGoLines counts non-blank lines in production and test Go files under
// root, skipping _examples and hidden directories.
func countGoLines(root string) (prod, test int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := 0
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				n++
			}
		}
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}
