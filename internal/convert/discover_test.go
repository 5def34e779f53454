// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func candidateNames(cs []Candidate) []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDiscover(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		dirs  []string
		want  []string
	}{
		{
			name:  "ignores non-PDF files",
			files: []string{"b.pdf", "notes.txt", "a.pdf", "image.png", "pdf", "archive.pdf.zip"},
			want:  []string{"a.pdf", "b.pdf"},
		},
		{
			name:  "lower-case group before upper-case group",
			files: []string{"b.pdf", "a.PDF", "c.pdf"},
			want:  []string{"b.pdf", "c.pdf", "a.PDF"},
		},
		{
			name:  "mixed-case spellings come last",
			files: []string{"z.Pdf", "y.PDF", "x.pdf", "w.pDF"},
			want:  []string{"x.pdf", "y.PDF", "z.Pdf", "w.pDF"},
		},
		{
			name:  "same path differing only by case kept once",
			files: []string{"report.pdf", "report.PDF"},
			want:  []string{"report.pdf"},
		},
		{
			name:  "directories skipped",
			files: []string{"a.pdf"},
			dirs:  []string{"folder.pdf"},
			want:  []string{"a.pdf"},
		},
		{
			name:  "hidden files skipped",
			files: []string{".draft.pdf", "a.pdf", ".PDF", "._a.PDF"},
			want:  []string{"a.pdf"},
		},
		{
			name: "empty directory",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				if err := os.WriteFile(filepath.Join(dir, f), []byte("%PDF"), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			for _, d := range tt.dirs {
				if err := os.Mkdir(filepath.Join(dir, d), 0o755); err != nil {
					t.Fatal(err)
				}
			}

			got, err := Discover(dir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if names := candidateNames(got); !equalStrings(names, tt.want) {
				t.Errorf("got %v, want %v", names, tt.want)
			}
			for _, c := range got {
				if c.Path != filepath.Join(dir, c.Name) {
					t.Errorf("path %q not inside %q", c.Path, dir)
				}
			}
		})
	}
}

func TestDiscover_MatchingCountIgnoresOthers(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"1.pdf", "2.pdf", "3.PDF", "x.doc", "y.txt", "z.jpeg", "readme"} {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("discovered %d candidates, want 3", len(got))
	}
}

func TestDiscover_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Discover(filepath.Join(tmpDir, "nope"))
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Errorf("missing dir: err = %v, want ErrDirectoryNotFound", err)
	}

	file := filepath.Join(tmpDir, "file.pdf")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Discover(file)
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Errorf("file as dir: err = %v, want ErrDirectoryNotFound", err)
	}
}

func TestOutputName(t *testing.T) {
	tests := map[string]string{
		"a.pdf":           "a.txt",
		"B.PDF":           "B.txt",
		"v1.2.report.Pdf": "v1.2.report.txt",
		"résumé.pdf":      "résumé.txt",
	}
	for in, want := range tests {
		if got := OutputName(in); got != want {
			t.Errorf("OutputName(%q) = %q, want %q", in, got, want)
		}
	}
}
