// Package remux builds ffmpeg commands that change a file's container
// without re-encoding.
package remux

import (
	"fmt"
	"strings"

	"jtools/command"
)

// RemuxBuilder builds "ffmpeg -i <in> -c copy <out>".
type RemuxBuilder struct {
	binary     string
	inputPath  string
	outputPath string
	overwrite  bool
}

// NewRemuxBuilder creates a RemuxBuilder using the ffmpeg in PATH.
func NewRemuxBuilder(inputPath, outputPath string) *RemuxBuilder {
	return &RemuxBuilder{
		binary:     "ffmpeg",
		inputPath:  inputPath,
		outputPath: outputPath,
	}
}

// SetBinary overrides the ffmpeg executable.
func (r *RemuxBuilder) SetBinary(binary string) *RemuxBuilder {
	if binary != "" {
		r.binary = binary
	}
	return r
}

// SetOverwrite makes ffmpeg replace an existing output (-y) instead of asking.
func (r *RemuxBuilder) SetOverwrite(overwrite bool) *RemuxBuilder {
	r.overwrite = overwrite
	return r
}

// BuildArgs implements command.Command.
func (r *RemuxBuilder) BuildArgs() []string {
	var args []string
	if r.overwrite {
		args = append(args, "-y")
	}
	return append(args,
		"-i", r.inputPath,
		"-c", "copy", // container change only
		r.outputPath,
	)
}

// Binary implements command.Command.
func (r *RemuxBuilder) Binary() string { return r.binary }

// DryRun implements command.Command.
func (r *RemuxBuilder) DryRun() string {
	return fmt.Sprintf("%s %s", r.binary, strings.Join(r.BuildArgs(), " "))
}

// GetTaskType implements command.Command.
func (r *RemuxBuilder) GetTaskType() command.TaskType { return command.TaskTypeRemux }

// GetOutputPath implements command.Command.
func (r *RemuxBuilder) GetOutputPath() string { return r.outputPath }
