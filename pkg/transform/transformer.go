// Package transform adapts the masking engine to the byte-stream boundary
// of the data exchange pipeline.
package transform

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/open-dataspace/maskgate/pkg/masking"
)

// ProblemReporter receives failures the transformer cannot absorb, so the
// calling pipeline can distinguish a failed transform from a masking no-op.
type ProblemReporter interface {
	ReportProblem(msg string)
}

// ProblemFunc adapts a plain function to the ProblemReporter interface.
type ProblemFunc func(msg string)

// ReportProblem calls f(msg).
func (f ProblemFunc) ReportProblem(msg string) { f(msg) }

// SlogReporter reports problems through the default structured logger.
type SlogReporter struct{}

// ReportProblem logs the problem at error level.
func (SlogReporter) ReportProblem(msg string) {
	slog.Error("Data masking transform problem", "problem", msg)
}

// Transformer drains an input byte stream, masks the decoded UTF-8 payload,
// and re-encodes the result into a new stream. Engine-level failures
// (malformed JSON, non-object roots) stay absorbed by the engine's fail-open
// policy; only stream I/O failures and unexpected internal failures surface
// here, as a reported problem with no output.
type Transformer struct {
	service  *masking.Service
	reporter ProblemReporter
}

// NewTransformer creates a transformer around the masking service. A nil
// reporter falls back to SlogReporter.
func NewTransformer(service *masking.Service, reporter ProblemReporter) *Transformer {
	if reporter == nil {
		reporter = SlogReporter{}
	}
	return &Transformer{
		service:  service,
		reporter: reporter,
	}
}

// Transform fully drains in (the caller retains ownership of the source) and
// returns a new reader over the masked payload. Empty input is valid and
// yields an empty output stream. On failure the problem is reported and no
// output is produced.
func (t *Transformer) Transform(in io.Reader) (out io.Reader, err error) {
	// The engine fails open on its own; anything escaping it here would
	// otherwise kill the calling pipeline, so it is reported instead.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("data masking transform failed: %v", r)
			t.reporter.ReportProblem(err.Error())
			out = nil
		}
	}()

	data, err := io.ReadAll(in)
	if err != nil {
		err = fmt.Errorf("failed to read input stream: %w", err)
		t.reporter.ReportProblem(err.Error())
		return nil, err
	}

	masked := t.service.MaskJSON(string(data))
	return bytes.NewReader([]byte(masked)), nil
}
