package models

import (
	"fmt"
)

// SplitMode selects how the number of parts is chosen.
type SplitMode int

const (
	// ModePartCount splits every eligible file into a fixed number of parts.
	ModePartCount SplitMode = iota + 1
	// ModePartSize derives the part count from a target part size.
	ModePartSize
)

func (m SplitMode) String() string {
	switch m {
	case ModePartCount:
		return "part-count"
	case ModePartSize:
		return "part-size"
	default:
		return "unknown"
	}
}

// SplitRequest describes one split batch. Exactly one of PartCount and
// PartSize is meaningful, selected by Mode; build requests with
// NewPartCountRequest or NewPartSizeRequest.
type SplitRequest struct {
	Mode      SplitMode
	PartCount int
	PartSize  int64 // bytes
	Threshold int64 // bytes; files at or below it are left alone
}

// NewPartCountRequest creates a fixed-count request.
func NewPartCountRequest(parts int, threshold int64) (SplitRequest, error) {
	r := SplitRequest{Mode: ModePartCount, PartCount: parts, Threshold: threshold}
	return r, r.Validate()
}

// NewPartSizeRequest creates a target-size request.
func NewPartSizeRequest(partSize, threshold int64) (SplitRequest, error) {
	r := SplitRequest{Mode: ModePartSize, PartSize: partSize, Threshold: threshold}
	return r, r.Validate()
}

// Eligible reports whether a file of the given size passes the threshold.
func (r SplitRequest) Eligible(size int64) bool {
	return size > r.Threshold
}

// Validate checks the request parameters for its mode.
func (r SplitRequest) Validate() error {
	if r.Threshold < 0 {
		return fmt.Errorf("size threshold cannot be negative")
	}
	switch r.Mode {
	case ModePartCount:
		if r.PartCount < 1 {
			return fmt.Errorf("part count must be at least 1, got %d", r.PartCount)
		}
	case ModePartSize:
		if r.PartSize <= 0 {
			return fmt.Errorf("part size must be positive, got %d bytes", r.PartSize)
		}
	default:
		return fmt.Errorf("split mode must be part-count or part-size")
	}
	return nil
}
