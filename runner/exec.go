package runner

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// ExecRunner spawns real processes.
type ExecRunner struct {
	logger hclog.Logger
}

// NewExecRunner creates a process-spawning Runner.
func NewExecRunner(logger hclog.Logger) *ExecRunner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ExecRunner{logger: logger}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, c Cmd) Result {
	r.logger.Debug("exec", "cmd", c.String())

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	if c.Capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		res.Err = errors.Wrapf(err, "%s exited with status %d", c.Name, res.ExitCode)
		return res
	}

	res.ExitCode = -1
	res.Err = errors.Wrapf(err, "failed to start %s", c.Name)
	return res
}
