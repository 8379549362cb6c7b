package models

import (
	"fmt"
	"strings"
)

// SegmentResult is the outcome of producing a single part file.
//
// A result is a success exactly when Err is nil. Failed results keep the
// attempted OutputPath because the tool may have left a partial file behind.
//
// Use NewSegmentSuccess or NewSegmentFailure to create validated instances.
type SegmentResult struct {
	Segment    Segment `json:"segment"`
	OutputPath string  `json:"output_path"`
	Err        error   `json:"-"`
}

// NewSegmentSuccess creates a successful SegmentResult.
//
// Returns an error if outputPath is empty or whitespace-only.
func NewSegmentSuccess(seg Segment, outputPath string) (*SegmentResult, error) {
	r := &SegmentResult{Segment: seg, OutputPath: outputPath}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid segment result: %w", err)
	}
	return r, nil
}

// NewSegmentFailure creates a failed SegmentResult. reason must not be nil.
func NewSegmentFailure(seg Segment, outputPath string, reason error) (*SegmentResult, error) {
	if reason == nil {
		return nil, fmt.Errorf("invalid segment result: failure requires a reason")
	}
	return &SegmentResult{Segment: seg, OutputPath: outputPath, Err: reason}, nil
}

// Succeeded reports whether the part was written.
func (r *SegmentResult) Succeeded() bool {
	return r.Err == nil
}

// Validate checks that a successful result names its output.
func (r *SegmentResult) Validate() error {
	if r.Err == nil && strings.TrimSpace(r.OutputPath) == "" {
		return fmt.Errorf("output_path cannot be empty for successful result")
	}
	return nil
}
