package batch

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"jtools/chunker"
	"jtools/display"
	"jtools/models"
	"jtools/naming"
)

// Split cuts every file with the split extension that is larger than the
// request threshold into parts, deleting the original only when all parts
// were written.
//
// Files already named as parts are never split again, so re-running split on
// the same folder is safe.
func (b *Batch) Split(ctx context.Context, dir string, req models.SplitRequest) (Stats, error) {
	var stats Stats

	if err := req.Validate(); err != nil {
		return stats, errors.Wrap(err, "invalid split request")
	}

	files, err := Scan(dir)
	if err != nil {
		return stats, err
	}

	candidates := filterExt(files, b.cfg.Split.Extension)
	if len(candidates) == 0 {
		b.logger.Info("no files to split", "dir", dir, "extension", b.cfg.Split.Extension)
		return stats, nil
	}

	for _, f := range candidates {
		if b.interrupted(ctx) {
			break
		}
		b.record(&stats, b.splitOne(ctx, f, req))
	}
	return stats, nil
}

func (b *Batch) splitOne(ctx context.Context, f models.MediaFile, req models.SplitRequest) Outcome {
	if naming.IsPart(f.Name()) {
		return Outcome{Name: f.Name(), Status: StatusSkipped, Message: f.Name() + " is already a part"}
	}
	if !req.Eligible(f.Size) {
		return Outcome{Name: f.Name(), Status: StatusSkipped,
			Message: fmt.Sprintf("%s (%s) is not above the size threshold", f.Name(), display.FormatBytes(f.Size))}
	}

	duration, err := b.prober.Duration(ctx, f.Path)
	if err != nil {
		return Outcome{Name: f.Name(), Status: StatusFailed, Message: "error getting duration of " + f.Name(), Err: err}
	}

	segments, err := chunker.Plan(f.Size, duration, req)
	if errors.Is(err, chunker.ErrNoSplitNeeded) {
		return Outcome{Name: f.Name(), Status: StatusSkipped,
			Message: fmt.Sprintf("%s (%s) already fits in one part", f.Name(), display.FormatBytes(f.Size))}
	}
	if err != nil {
		return Outcome{Name: f.Name(), Status: StatusFailed, Message: "error planning split of " + f.Name(), Err: err}
	}

	b.logger.Info("splitting", "file", f.Name(), "size", display.FormatBytes(f.Size),
		"duration", duration, "parts", len(segments), "mode", req.Mode.String())

	res := b.executor.Split(ctx, f, segments)
	if !res.Succeeded() {
		return Outcome{Name: f.Name(), Status: StatusFailed,
			Message: fmt.Sprintf("error splitting %s (%d of %d parts written, original kept)", f.Name(), len(res.Written()), res.Planned),
			Err:     res.Err}
	}

	if b.cfg.DryRun {
		return Outcome{Name: f.Name(), Status: StatusSucceeded, Message: fmt.Sprintf("would split %s into %d parts", f.Name(), len(segments))}
	}
	return Outcome{Name: f.Name(), Status: StatusSucceeded, Message: fmt.Sprintf("finished splitting %s into %d parts", f.Name(), len(segments))}
}
