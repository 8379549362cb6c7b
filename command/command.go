// Package command provides the Command interface shared by the builders for
// the external tools jtools invokes (ffmpeg remux, ffmpeg trim, uploader).
//
// Builders only assemble argument lists; running them goes through a
// runner.Runner so every caller can be tested with runner.FakeRunner.
package command

import (
	"context"

	"jtools/runner"
)

// TaskType represents the kind of tool invocation.
type TaskType string

const (
	TaskTypeRemux  TaskType = "remux"  // Container change, streams copied
	TaskTypeTrim   TaskType = "trim"   // Cut one part out of a source, streams copied
	TaskTypeUpload TaskType = "upload" // Hand files to the upload tool
)

// Command is an external tool invocation that can be built, previewed and run.
//
// Example usage:
//
//	cmd := trim.NewTrimBuilder("in.mp4", "in (part 01).mp4", seg)
//	fmt.Println(cmd.DryRun())
//	res := command.Run(ctx, r, cmd)
type Command interface {
	// BuildArgs returns the tool arguments, suitable for exec.Command(binary, args...).
	BuildArgs() []string

	// Binary returns the executable name or path.
	Binary() string

	// DryRun returns the full command line without executing it.
	DryRun() string

	// GetTaskType returns the kind of invocation, used for logging.
	GetTaskType() TaskType

	// GetOutputPath returns the file the command writes, or "" for uploads.
	GetOutputPath() string
}

// ToCmd converts a Command into a runner.Cmd. Tool output streams to the
// terminal.
func ToCmd(c Command) runner.Cmd {
	return runner.Cmd{Name: c.Binary(), Args: c.BuildArgs()}
}

// Run executes c through r and returns the tool result.
func Run(ctx context.Context, r runner.Runner, c Command) runner.Result {
	return r.Run(ctx, ToCmd(c))
}
