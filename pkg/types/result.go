// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FileStatus is the outcome of converting one PDF.
type FileStatus string

const (
	StatusSuccess FileStatus = "success"
	StatusFailed  FileStatus = "failed"
)

// FileResult records the outcome for one candidate PDF. The JSON field names
// are read by callers that scrape the result block, so they must not change.
type FileResult struct {
	// PDF is the input file name (base name, no directory).
	PDF string `json:"pdf" yaml:"pdf"`

	// TXT is the derived output file name.
	TXT string `json:"txt" yaml:"txt"`

	Status FileStatus `json:"status" yaml:"status"`

	// Error is the failure description; empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Succeeded reports whether the file converted.
func (r FileResult) Succeeded() bool {
	return r.Status == StatusSuccess
}

// RunSummary aggregates the results of one batch run. Counts are only
// changed through Record, which keeps Total == Success + Failed == len(Files).
type RunSummary struct {
	Total   int          `json:"total" yaml:"total"`
	Success int          `json:"success" yaml:"success"`
	Failed  int          `json:"failed" yaml:"failed"`
	Files   []FileResult `json:"files" yaml:"files"`
}

// NewRunSummary returns an empty summary whose Files marshals as [] rather
// than null.
func NewRunSummary() *RunSummary {
	return &RunSummary{Files: []FileResult{}}
}

// Record appends r and updates the counters.
func (s *RunSummary) Record(r FileResult) {
	s.Files = append(s.Files, r)
	s.Total++
	if r.Succeeded() {
		s.Success++
	} else {
		s.Failed++
	}
}

// HasFailures reports whether any file failed conversion.
func (s *RunSummary) HasFailures() bool {
	return s.Failed > 0
}
