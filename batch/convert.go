package batch

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"

	"jtools/command/remux"
	"jtools/models"
)

// Convert remuxes every file with a configured source extension into the
// target container and deletes the original on success.
func (b *Batch) Convert(ctx context.Context, dir string) (Stats, error) {
	var stats Stats

	files, err := Scan(dir)
	if err != nil {
		return stats, err
	}

	var candidates []models.MediaFile
	for _, f := range files {
		if b.cfg.HasSourceExtension(f.Ext) && !f.HasExt(b.cfg.Convert.TargetExtension) {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		b.logger.Info("no files to convert", "dir", dir)
		return stats, nil
	}

	for _, f := range candidates {
		if b.interrupted(ctx) {
			break
		}
		b.record(&stats, b.convertOne(ctx, f))
	}
	return stats, nil
}

func (b *Batch) convertOne(ctx context.Context, f models.MediaFile) Outcome {
	out := filepath.Join(filepath.Dir(f.Path), f.Stem()+b.cfg.Convert.TargetExtension)
	b.logger.Info("converting", "file", f.Name(), "output", filepath.Base(out))

	cmd := remux.NewRemuxBuilder(f.Path, out).
		SetBinary(b.cfg.Tools.FFmpeg).
		SetOverwrite(b.cfg.Overwrite)

	res := b.exec(ctx, cmd)
	if !res.OK() {
		return Outcome{Name: f.Name(), Status: StatusFailed, Message: "error converting " + f.Name(), Err: toolError(res.Err, res.ExitCode)}
	}

	if b.cfg.DryRun {
		return Outcome{Name: f.Name(), Status: StatusSucceeded, Message: "would convert " + f.Name() + " to " + filepath.Base(out)}
	}
	if err := remove(f.Path); err != nil {
		return Outcome{Name: f.Name(), Status: StatusFailed, Message: "converted but could not delete " + f.Name(), Err: err}
	}
	return Outcome{Name: f.Name(), Status: StatusSucceeded, Message: "finished converting " + f.Name()}
}

// toolError turns a failed invocation into an error.
func toolError(err error, code int) error {
	if err != nil {
		return err
	}
	return errors.Errorf("exit status %d", code)
}
