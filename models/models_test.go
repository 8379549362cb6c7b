package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSegmentValidate(t *testing.T) {
	tests := []struct {
		name          string
		segment       Segment
		WantError     bool
		ErrorContains string
	}{
		{name: "Valid segment", segment: Segment{Index: 1, Start: 0, Duration: 10}, WantError: false},
		{name: "Fractional offsets", segment: Segment{Index: 3, Start: 66.666, Duration: 33.333}, WantError: false},
		{name: "Index zero", segment: Segment{Index: 0, Start: 0, Duration: 10}, WantError: true, ErrorContains: "index must be at least 1"},
		{name: "Negative start", segment: Segment{Index: 1, Start: -1, Duration: 10}, WantError: true, ErrorContains: "start must not be negative"},
		{name: "Zero duration", segment: Segment{Index: 1, Start: 0, Duration: 0}, WantError: true, ErrorContains: "duration must be greater than 0"},
		{name: "Negative duration", segment: Segment{Index: 1, Start: 5, Duration: -2}, WantError: true, ErrorContains: "duration must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.segment.Validate()
			if tt.WantError {
				if err == nil {
					t.Errorf("Expected error but got nil")
				} else if !strings.Contains(err.Error(), tt.ErrorContains) {
					t.Errorf("Expected error to contain '%s', but got '%s'", tt.ErrorContains, err.Error())
				}
			} else if err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestNewSegment(t *testing.T) {
	s, err := NewSegment(2, 10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.End() != 20 {
		t.Errorf("Expected end 20, got %.2f", s.End())
	}

	if _, err := NewSegment(0, 0, 1); err == nil {
		t.Error("Expected error for index 0")
	}
}

func TestSegment_OutputName(t *testing.T) {
	s := Segment{Index: 4, Start: 0, Duration: 1}
	if got := s.OutputName("clip", ".mp4"); got != "clip (part 04).mp4" {
		t.Errorf("Expected 'clip (part 04).mp4', got '%s'", got)
	}
}

func TestSegmentResult(t *testing.T) {
	seg := Segment{Index: 1, Start: 0, Duration: 5}

	ok, err := NewSegmentSuccess(seg, "clip (part 01).mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok.Succeeded() {
		t.Error("Expected success")
	}

	if _, err := NewSegmentSuccess(seg, "   "); err == nil {
		t.Error("Expected error for empty output path")
	}

	failed, err := NewSegmentFailure(seg, "clip (part 01).mp4", fmt.Errorf("exit status 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if failed.Succeeded() {
		t.Error("Expected failure")
	}
	if failed.Validate() != nil {
		t.Errorf("failed result should validate: %v", failed.Validate())
	}

	if _, err := NewSegmentFailure(seg, "", nil); err == nil {
		t.Error("Expected error for failure without reason")
	}
}

func TestSplitRequest(t *testing.T) {
	tests := []struct {
		name      string
		build     func() (SplitRequest, error)
		wantError bool
	}{
		{"count ok", func() (SplitRequest, error) { return NewPartCountRequest(3, 0) }, false},
		{"count of one", func() (SplitRequest, error) { return NewPartCountRequest(1, 0) }, false},
		{"count zero", func() (SplitRequest, error) { return NewPartCountRequest(0, 0) }, true},
		{"size ok", func() (SplitRequest, error) { return NewPartSizeRequest(1 << 30, 100) }, false},
		{"size zero", func() (SplitRequest, error) { return NewPartSizeRequest(0, 0) }, true},
		{"negative threshold", func() (SplitRequest, error) { return NewPartCountRequest(2, -1) }, true},
		{"unset mode", func() (SplitRequest, error) { r := SplitRequest{}; return r, r.Validate() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if tt.wantError && err == nil {
				t.Error("Expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSplitRequest_Eligible(t *testing.T) {
	r, _ := NewPartCountRequest(2, 100)
	if r.Eligible(100) {
		t.Error("file at the threshold must not be eligible")
	}
	if !r.Eligible(101) {
		t.Error("file above the threshold must be eligible")
	}
}

func TestSplitMode_String(t *testing.T) {
	if ModePartCount.String() != "part-count" || ModePartSize.String() != "part-size" {
		t.Errorf("unexpected mode names: %s, %s", ModePartCount, ModePartSize)
	}
	if SplitMode(0).String() != "unknown" {
		t.Errorf("zero mode should be unknown")
	}
}

func TestMediaFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Holiday.MOV")
	if err := os.WriteFile(path, []byte("12345"), 0644); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	m := NewMediaFile(path, info)
	if m.Size != 5 {
		t.Errorf("Expected size 5, got %d", m.Size)
	}
	if m.Name() != "Holiday.MOV" || m.Stem() != "Holiday" || m.Ext != ".MOV" {
		t.Errorf("unexpected name parts: %s %s %s", m.Name(), m.Stem(), m.Ext)
	}
	if !m.HasExt(".mov") {
		t.Error("HasExt should ignore case")
	}

	paths := Paths([]MediaFile{m, {Path: "b.mp4"}})
	if len(paths) != 2 || paths[0] != path || paths[1] != "b.mp4" {
		t.Errorf("unexpected paths: %v", paths)
	}
}
