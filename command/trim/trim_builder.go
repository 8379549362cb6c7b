// Package trim builds ffmpeg commands that cut one segment out of a source
// file with stream copy.
package trim

import (
	"fmt"
	"strings"

	"jtools/command"
	"jtools/internal/timeutil"
	"jtools/models"
)

// TrimBuilder builds "ffmpeg -i <src> -ss <start> -t <duration> -c copy <out>".
type TrimBuilder struct {
	binary     string
	sourcePath string
	outputPath string
	segment    models.Segment
	overwrite  bool
}

// NewTrimBuilder creates a TrimBuilder for one segment of sourcePath.
func NewTrimBuilder(sourcePath, outputPath string, seg models.Segment) *TrimBuilder {
	return &TrimBuilder{
		binary:     "ffmpeg",
		sourcePath: sourcePath,
		outputPath: outputPath,
		segment:    seg,
	}
}

// SetBinary overrides the ffmpeg executable.
func (t *TrimBuilder) SetBinary(binary string) *TrimBuilder {
	if binary != "" {
		t.binary = binary
	}
	return t
}

// SetOverwrite makes ffmpeg replace an existing part (-y) instead of asking.
func (t *TrimBuilder) SetOverwrite(overwrite bool) *TrimBuilder {
	t.overwrite = overwrite
	return t
}

// BuildArgs implements command.Command. The seek is placed after -i so the
// cut is applied on output, as stream copy requires.
func (t *TrimBuilder) BuildArgs() []string {
	var args []string
	if t.overwrite {
		args = append(args, "-y")
	}
	return append(args,
		"-i", t.sourcePath,
		"-ss", timeutil.FormatOffset(t.segment.Start),
		"-t", timeutil.FormatOffset(t.segment.Duration),
		"-c", "copy",
		t.outputPath,
	)
}

// Binary implements command.Command.
func (t *TrimBuilder) Binary() string { return t.binary }

// DryRun implements command.Command.
func (t *TrimBuilder) DryRun() string {
	return fmt.Sprintf("%s %s", t.binary, strings.Join(t.BuildArgs(), " "))
}

// GetTaskType implements command.Command.
func (t *TrimBuilder) GetTaskType() command.TaskType { return command.TaskTypeTrim }

// GetOutputPath implements command.Command.
func (t *TrimBuilder) GetOutputPath() string { return t.outputPath }

// Segment returns the segment being cut.
func (t *TrimBuilder) Segment() models.Segment { return t.segment }
