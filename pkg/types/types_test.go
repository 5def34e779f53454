// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConversionRequest(t *testing.T) {
	anchor := filepath.Join("opt", "pdf-extract", "bin")
	req := DefaultConversionRequest(anchor)

	assert.Equal(t, filepath.Join("opt", "pdf-extract", "input_PDF"), filepath.Clean(req.InputDir))
	assert.Equal(t, filepath.Join("opt", "pdf-extract", "output_extract"), filepath.Clean(req.OutputDir))
}

func TestWithOverrides(t *testing.T) {
	base := ConversionRequest{InputDir: "in", OutputDir: "out"}

	tests := []struct {
		name          string
		input, output string
		want          ConversionRequest
	}{
		{name: "no overrides", want: base},
		{name: "input only", input: "pdfs", want: ConversionRequest{InputDir: "pdfs", OutputDir: "out"}},
		{name: "output only", output: "txt", want: ConversionRequest{InputDir: "in", OutputDir: "txt"}},
		{name: "both", input: "a", output: "b", want: ConversionRequest{InputDir: "a", OutputDir: "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.WithOverrides(tt.input, tt.output))
		})
	}
	assert.Equal(t, "in", base.InputDir, "receiver must not change")
}

func TestRunSummaryRecord(t *testing.T) {
	s := NewRunSummary()
	s.Record(FileResult{PDF: "a.pdf", TXT: "a.txt", Status: StatusSuccess})
	s.Record(FileResult{PDF: "b.pdf", TXT: "b.txt", Status: StatusFailed, Error: "bad xref"})
	s.Record(FileResult{PDF: "c.pdf", TXT: "c.txt", Status: StatusSuccess})

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Success)
	assert.Equal(t, 1, s.Failed)
	assert.Len(t, s.Files, s.Total)
	assert.Equal(t, s.Total, s.Success+s.Failed)
	assert.True(t, s.HasFailures())
	assert.Equal(t, "b.pdf", s.Files[1].PDF, "files keep insertion order")
}

func TestRunSummaryJSON(t *testing.T) {
	s := NewRunSummary()
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":0,"success":0,"failed":0,"files":[]}`, string(data))

	s.Record(FileResult{PDF: "a.pdf", TXT: "a.txt", Status: StatusSuccess})
	s.Record(FileResult{PDF: "b.pdf", TXT: "b.txt", Status: StatusFailed, Error: "boom"})
	data, err = json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"total": 2, "success": 1, "failed": 1,
		"files": [
			{"pdf": "a.pdf", "txt": "a.txt", "status": "success"},
			{"pdf": "b.pdf", "txt": "b.txt", "status": "failed", "error": "boom"}
		]
	}`, string(data))
}
