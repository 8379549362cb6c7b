// Package batch runs the jtools batch modes (convert, split and upload) over
// the direct entries of one folder.
//
// Items are processed one at a time. Each item commits on its own: a source
// file is deleted only after the tool that consumed it reported success, and
// a failed item never stops the batch. Cancelling the context stops the
// batch before the next item starts.
package batch

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"jtools/command"
	"jtools/config"
	"jtools/ffprobe"
	"jtools/runner"
	"jtools/segmenter"
)

// Status is the outcome of one batch item.
type Status int

const (
	StatusSucceeded Status = iota
	StatusFailed
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome describes what happened to one item: a file, or a group of files
// uploaded together.
type Outcome struct {
	Name    string
	Status  Status
	Message string
	Err     error
}

// Stats counts item outcomes for one run.
type Stats struct {
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
}

func (s *Stats) add(status Status) {
	s.Total++
	switch status {
	case StatusSucceeded:
		s.Succeeded++
	case StatusFailed:
		s.Failed++
	case StatusSkipped:
		s.Skipped++
	}
}

// Batch runs batch modes with one configuration.
type Batch struct {
	cfg      *config.Config
	run      runner.Runner
	prober   *ffprobe.Prober
	executor *segmenter.Executor
	logger   hclog.Logger
	report   func(Outcome)
}

// New creates a Batch. r should already be a runner.DryRunner when
// cfg.DryRun is set; Batch itself only suppresses deletions.
func New(cfg *config.Config, r runner.Runner, logger hclog.Logger) *Batch {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Batch{
		cfg:    cfg,
		run:    r,
		prober: ffprobe.NewProber(r, cfg.Tools.FFprobe, logger.Named("ffprobe")),
		executor: segmenter.NewExecutor(r, segmenter.Options{
			FFmpeg:    cfg.Tools.FFmpeg,
			Overwrite: cfg.Overwrite,
			DryRun:    cfg.DryRun,
		}, logger.Named("segmenter")),
		logger: logger,
		report: func(Outcome) {},
	}
}

// OnOutcome registers fn to be called after every item.
func (b *Batch) OnOutcome(fn func(Outcome)) *Batch {
	if fn != nil {
		b.report = fn
	}
	return b
}

func (b *Batch) record(stats *Stats, o Outcome) {
	stats.add(o.Status)

	switch o.Status {
	case StatusFailed:
		b.logger.Error(o.Message, "item", o.Name, "error", o.Err)
	case StatusSkipped:
		b.logger.Debug(o.Message, "item", o.Name)
	default:
		b.logger.Info(o.Message, "item", o.Name)
	}
	b.report(o)
}

// interrupted reports whether the batch must stop before the next item.
func (b *Batch) interrupted(ctx context.Context) bool {
	if err := ctx.Err(); err != nil {
		b.logger.Warn("batch interrupted, remaining items not processed", "reason", err)
		return true
	}
	return false
}

// exec runs one tool invocation.
func (b *Batch) exec(ctx context.Context, c command.Command) runner.Result {
	b.logger.Debug("running", "task", c.GetTaskType(), "cmd", c.DryRun())
	return command.Run(ctx, b.run, c)
}
