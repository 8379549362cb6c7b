package trim

import (
	"reflect"
	"testing"

	"jtools/command"
	"jtools/models"
)

func TestTrimBuilder_BuildArgs(t *testing.T) {
	seg := models.Segment{Index: 2, Start: 100.0 / 3, Duration: 100.0 / 3}

	tests := []struct {
		name     string
		builder  *TrimBuilder
		expected []string
	}{
		{
			name:    "stream copy cut",
			builder: NewTrimBuilder("/v/clip.mp4", "/v/clip (part 02).mp4", seg),
			expected: []string{
				"-i", "/v/clip.mp4",
				"-ss", "33.333333333333336",
				"-t", "33.333333333333336",
				"-c", "copy",
				"/v/clip (part 02).mp4",
			},
		},
		{
			name:    "first part with overwrite",
			builder: NewTrimBuilder("in.mp4", "in (part 01).mp4", models.Segment{Index: 1, Start: 0, Duration: 60}).SetOverwrite(true),
			expected: []string{
				"-y",
				"-i", "in.mp4",
				"-ss", "0",
				"-t", "60",
				"-c", "copy",
				"in (part 01).mp4",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.builder.BuildArgs(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("BuildArgs() = %v; want %v", got, tt.expected)
			}
		})
	}
}

func TestTrimBuilder_Metadata(t *testing.T) {
	seg := models.Segment{Index: 1, Start: 0, Duration: 5}
	b := NewTrimBuilder("in.mp4", "out.mp4", seg).SetBinary("ffmpeg7")

	if b.Binary() != "ffmpeg7" {
		t.Errorf("Expected ffmpeg7, got %s", b.Binary())
	}
	if b.GetTaskType() != command.TaskTypeTrim {
		t.Errorf("Expected trim task type, got %s", b.GetTaskType())
	}
	if b.GetOutputPath() != "out.mp4" {
		t.Errorf("Expected out.mp4, got %s", b.GetOutputPath())
	}
	if b.Segment() != seg {
		t.Errorf("Expected segment %+v, got %+v", seg, b.Segment())
	}
	if b.DryRun() != "ffmpeg7 -i in.mp4 -ss 0 -t 5 -c copy out.mp4" {
		t.Errorf("unexpected dry run: %s", b.DryRun())
	}
}
