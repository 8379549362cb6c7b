// Package segmenter runs a split plan: one stream-copy ffmpeg trim per
// segment, with an all-or-nothing commit per source file.
//
// The source is deleted only when every part was written. The first failed
// part aborts the remaining ones; parts already written stay on disk and the
// source is kept, so the split can simply be retried.
package segmenter

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"jtools/command"
	"jtools/command/trim"
	"jtools/internal/timeutil"
	"jtools/models"
	"jtools/naming"
	"jtools/runner"
)

// Options configures an Executor.
type Options struct {
	// FFmpeg is the ffmpeg executable; empty means "ffmpeg".
	FFmpeg string

	// Overwrite passes -y so left-over parts from an earlier attempt are replaced.
	Overwrite bool

	// DryRun keeps the source even when every part succeeded.
	DryRun bool
}

// Executor produces part files for one source at a time.
type Executor struct {
	run    runner.Runner
	opts   Options
	logger hclog.Logger
}

// NewExecutor creates an Executor.
func NewExecutor(r runner.Runner, opts Options, logger hclog.Logger) *Executor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Executor{run: r, opts: opts, logger: logger}
}

// SplitResult is the outcome of splitting one source file.
type SplitResult struct {
	Source models.MediaFile

	// Planned is the number of segments in the plan.
	Planned int

	// Parts holds one result per attempted segment, in order. After a failure
	// the slice ends with the failed segment.
	Parts []models.SegmentResult

	// Completed is true when every planned part was written.
	Completed bool

	// SourceDeleted is true when the source was removed after completion.
	SourceDeleted bool

	// Err is the first part failure, or the error deleting the source.
	Err error
}

// Succeeded reports whether the split committed (or would have, in a dry run).
func (r SplitResult) Succeeded() bool {
	return r.Completed && r.Err == nil
}

// Written returns the paths of parts that were produced.
func (r SplitResult) Written() []string {
	var out []string
	for _, p := range r.Parts {
		if p.Succeeded() {
			out = append(out, p.OutputPath)
		}
	}
	return out
}

// Split cuts src into segments and deletes src if all of them succeed.
func (e *Executor) Split(ctx context.Context, src models.MediaFile, segments []models.Segment) SplitResult {
	res := SplitResult{Source: src, Planned: len(segments)}
	if len(segments) == 0 {
		res.Err = errors.New("no segments planned")
		return res
	}

	for _, seg := range segments {
		part := e.cutSegment(ctx, src, seg, len(segments))
		res.Parts = append(res.Parts, part)
		if !part.Succeeded() {
			res.Err = part.Err
			break
		}
	}

	if len(res.Parts) != len(segments) || res.Err != nil {
		e.logger.Error("split aborted, original kept",
			"source", src.Name(),
			"written", len(res.Written()),
			"planned", len(segments),
			"error", res.Err)
		return res
	}
	res.Completed = true

	if e.opts.DryRun {
		e.logger.Info("dry run: original kept", "source", src.Name())
		return res
	}

	if err := os.Remove(src.Path); err != nil {
		res.Err = errors.Wrapf(err, "parts written but %s could not be deleted", src.Name())
		e.logger.Error("delete failed", "source", src.Name(), "error", err)
		return res
	}
	res.SourceDeleted = true
	e.logger.Info("finished splitting", "source", src.Name(), "parts", len(segments))
	return res
}

func (e *Executor) cutSegment(ctx context.Context, src models.MediaFile, seg models.Segment, total int) models.SegmentResult {
	out := naming.PartPath(src.Path, seg.Index)

	if err := ctx.Err(); err != nil {
		r, _ := models.NewSegmentFailure(seg, out, errors.Wrapf(err, "part %d not started", seg.Index))
		return *r
	}

	cmd := trim.NewTrimBuilder(src.Path, out, seg).
		SetBinary(e.opts.FFmpeg).
		SetOverwrite(e.opts.Overwrite)

	e.logger.Debug("running", "task", cmd.GetTaskType(), "cmd", cmd.DryRun())
	e.logger.Info("creating part",
		"part", seg.Index,
		"of", total,
		"source", src.Name(),
		"output", filepath.Base(cmd.GetOutputPath()),
		"range", timeutil.FormatRange(seg.Start, seg.Duration))

	tool := command.Run(ctx, e.run, cmd)
	if tool.OK() {
		r, err := models.NewSegmentSuccess(seg, out)
		if err == nil {
			return *r
		}
		tool.Err = err
	}

	reason := tool.Err
	if reason == nil {
		reason = errors.Errorf("exit status %d", tool.ExitCode)
	}
	r, _ := models.NewSegmentFailure(seg, out, errors.Wrapf(reason, "error creating part %d of %s", seg.Index, src.Name()))
	return *r
}
