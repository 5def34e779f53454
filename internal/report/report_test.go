// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-extract/pkg/types"
)

func sampleSummary() *types.RunSummary {
	s := types.NewRunSummary()
	s.Record(types.FileResult{PDF: "a.pdf", TXT: "a.txt", Status: types.StatusSuccess})
	s.Record(types.FileResult{PDF: "b.PDF", TXT: "b.txt", Status: types.StatusFailed, Error: "malformed PDF: bad xref"})
	return s
}

func TestProgressLines(t *testing.T) {
	var out bytes.Buffer
	s := sampleSummary()

	Found(&out, 2, "/data/input_PDF")
	Processing(&out, "a.pdf")
	OK(&out)
	Processing(&out, "b.PDF")
	Failed(&out, errors.New("malformed PDF: bad xref"))
	Done(&out, s)

	want := "Found 2 PDF file(s) in /data/input_PDF\n" +
		"Processing: a.pdf ... OK\n" +
		"Processing: b.PDF ... FAILED: malformed PDF: bad xref\n" +
		"\nDone. Success: 1, Failed: 1\n"
	assert.Equal(t, want, out.String())
}

func TestWriteEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteEmpty(&out, types.NewRunSummary()))

	line := out.String()
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Equal(t, 1, strings.Count(line, "\n"), "must be a single line")
	assert.JSONEq(t,
		`{"message":"No PDF files found in input folder.","total":0,"success":0,"failed":0,"files":[]}`,
		line)
}

func TestWriteResult(t *testing.T) {
	var out bytes.Buffer
	out.WriteString("Processing: a.pdf ... OK\n")
	require.NoError(t, WriteResult(&out, sampleSummary()))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, ResultSentinel, lines[len(lines)-2])
	assert.Empty(t, lines[len(lines)-3], "blank line before the sentinel")

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &got))
	assert.EqualValues(t, 2, got["total"])
	assert.EqualValues(t, 1, got["success"])
	assert.EqualValues(t, 1, got["failed"])

	files := got["files"].([]any)
	require.Len(t, files, 2)
	assert.NotContains(t, files[0].(map[string]any), "error")
	assert.Equal(t, "malformed PDF: bad xref", files[1].(map[string]any)["error"])
}

func TestParseResult(t *testing.T) {
	var out bytes.Buffer
	Found(&out, 2, "/in")
	require.NoError(t, WriteResult(&out, sampleSummary()))

	got, err := ParseResult(out.String())
	require.NoError(t, err)
	assert.Equal(t, sampleSummary(), got)

	_, err = ParseResult("Found 0 PDF file(s)\n")
	assert.Error(t, err)

	_, err = ParseResult(ResultSentinel + "\n{not json")
	assert.Error(t, err)
}

func TestWriteFatal(t *testing.T) {
	var out bytes.Buffer
	WriteFatal(&out, errors.New("input folder does not exist: /nope"))
	assert.Equal(t, "FATAL ERROR: input folder does not exist: /nope\n", out.String())
}

func TestWriteSummaryFile(t *testing.T) {
	dir := t.TempDir()
	s := sampleSummary()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "reports", "run.yaml")
		require.NoError(t, WriteSummaryFile(path, s))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var got types.RunSummary
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, *s, got)
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "run.json")
		require.NoError(t, WriteSummaryFile(path, s))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var got types.RunSummary
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, *s, got)
	})
}
