// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
)

const (
	pdfExt = ".pdf"
	txtExt = ".txt"
)

// ErrDirectoryNotFound is returned when the input folder is missing or is
// not a directory.
var ErrDirectoryNotFound = errors.New("input folder does not exist")

// Candidate is a PDF queued for conversion.
type Candidate struct {
	// Path is the absolute path of the PDF.
	Path string

	// Name is the PDF file name.
	Name string

	// OutputName is Name with its extension replaced by .txt.
	OutputName string
}

func newCandidate(path string) Candidate {
	name := filepath.Base(path)
	return Candidate{
		Path:       path,
		Name:       name,
		OutputName: OutputName(name),
	}
}

// OutputName derives the text file name for a PDF file name.
func OutputName(pdfName string) string {
	return strings.TrimSuffix(pdfName, filepath.Ext(pdfName)) + txtExt
}

// Discover lists the PDFs directly inside dir.
//
// Hidden files (leading dot) are skipped. The rest are matched on a
// case-insensitive .pdf extension and grouped by the exact spelling of that
// extension: ".pdf" first, ".PDF" second, any other spelling after that in
// byte order. Each group is sorted by path and the
// groups are concatenated, so the overall order is not strictly
// alphabetical. Paths that differ only by case are kept once, first seen
// wins, so a case-insensitive file system never yields the same file twice.
func Discover(dir string) ([]Candidate, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("checking input folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input folder %s: %w", dir, err)
	}

	pdfs := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return !e.IsDir() && !isHidden(e.Name()) && strings.EqualFold(filepath.Ext(e.Name()), pdfExt)
	})
	groups := lo.GroupBy(pdfs, func(e os.DirEntry) string {
		return filepath.Ext(e.Name())
	})

	variants := lo.Keys(groups)
	slices.SortFunc(variants, compareVariants)

	var paths []string
	for _, v := range variants {
		group := lo.Map(groups[v], func(e os.DirEntry, _ int) string {
			return filepath.Join(dir, e.Name())
		})
		slices.Sort(group)
		paths = append(paths, group...)
	}

	unique := lo.UniqBy(paths, strings.ToLower)
	return lo.Map(unique, func(p string, _ int) Candidate {
		return newCandidate(p)
	}), nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// compareVariants orders extension spellings: ".pdf", ".PDF", then the rest.
func compareVariants(a, b string) int {
	ra, rb := variantRank(a), variantRank(b)
	if ra != rb {
		return ra - rb
	}
	return strings.Compare(a, b)
}

func variantRank(ext string) int {
	switch ext {
	case pdfExt:
		return 0
	case strings.ToUpper(pdfExt):
		return 1
	default:
		return 2
	}
}
