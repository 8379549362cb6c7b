package runner

import (
	"context"

	"github.com/hashicorp/go-hclog"
)

// DryRunner forwards captured (read-only) commands to the wrapped runner and
// only logs everything else, reporting success.
//
// Probes still run for real so split plans can be printed; transcodes and
// uploads never touch the filesystem.
type DryRunner struct {
	next   Runner
	logger hclog.Logger
}

// NewDryRunner wraps next.
func NewDryRunner(next Runner, logger hclog.Logger) *DryRunner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &DryRunner{next: next, logger: logger}
}

// Run implements Runner.
func (r *DryRunner) Run(ctx context.Context, c Cmd) Result {
	if c.Capture {
		return r.next.Run(ctx, c)
	}
	r.logger.Info("dry run", "cmd", c.String())
	return Result{}
}
