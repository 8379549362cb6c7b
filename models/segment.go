// Package models provides core data structures for jtools.
package models

import (
	"fmt"

	"jtools/naming"
)

// Segment is one planned part of a split.
//
// Index is 1-based and determines the output file name. Start and Duration
// are seconds; float64 keeps fractional offsets exact enough for ffmpeg trim
// parameters.
type Segment struct {
	Index    int     `json:"index"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// NewSegment creates a validated Segment.
func NewSegment(index int, start, duration float64) (*Segment, error) {
	s := &Segment{Index: index, Start: start, Duration: duration}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid segment: %w", err)
	}
	return s, nil
}

// End returns the nominal end offset of the segment.
func (s Segment) End() float64 {
	return s.Start + s.Duration
}

// OutputName returns the part file name for a source with the given stem
// and extension.
func (s Segment) OutputName(stem, ext string) string {
	return naming.PartName(stem, s.Index, ext)
}

// Validate checks if the Segment has valid data.
//
// Returns an error if:
//   - Index is below 1
//   - Start is negative
//   - Duration is not positive
func (s Segment) Validate() error {
	if s.Index < 1 {
		return fmt.Errorf("index must be at least 1")
	}
	if s.Start < 0 {
		return fmt.Errorf("start must not be negative")
	}
	if s.Duration <= 0 {
		return fmt.Errorf("duration must be greater than 0")
	}
	return nil
}
