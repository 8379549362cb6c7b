// Package runner provides a narrow interface over the external command-line
// tools jtools drives (ffmpeg, ffprobe, telegram-upload and the identity helper).
//
// Every component talks to the outside world through Runner, so the split
// planner, segment executor and batch modes can be exercised with FakeRunner
// instead of real binaries.
package runner

import (
	"context"
	"fmt"
	"strings"
)

// Cmd describes one external tool invocation.
type Cmd struct {
	// Name is the executable to run (looked up in PATH).
	Name string

	// Args are passed to the executable verbatim.
	Args []string

	// Env holds extra KEY=VALUE pairs appended to the inherited environment.
	Env []string

	// Capture buffers stdout and stderr into the Result instead of streaming
	// them to the terminal. Queries (probe, whoami) capture; transcodes and
	// uploads stream so their progress stays visible.
	Capture bool
}

// String renders the command line for logging and dry runs.
func (c Cmd) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return fmt.Sprintf("%s %s", c.Name, strings.Join(c.Args, " "))
}

// Result is the outcome of a single invocation.
type Result struct {
	// ExitCode is the process exit status. -1 means the process could not be
	// started or was killed by a signal.
	ExitCode int

	// Stdout and Stderr are only populated when the command was captured.
	Stdout string
	Stderr string

	// Err is set when the process could not be started or did not exit cleanly.
	Err error
}

// OK reports whether the tool exited with status 0.
func (r Result) OK() bool {
	return r.ExitCode == 0 && r.Err == nil
}

// Runner executes external tools synchronously.
type Runner interface {
	// Run blocks until the process exits. There is no timeout; cancelling ctx
	// kills the process.
	Run(ctx context.Context, cmd Cmd) Result
}
