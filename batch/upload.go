package batch

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"jtools/command/upload"
	"jtools/grouper"
	"jtools/models"
)

// UploadOptions selects the upload strategy.
type UploadOptions struct {
	// Album sends every matching file in a single album invocation.
	Album bool

	// ExtraArgs are forwarded to the uploader after the configured ones.
	ExtraArgs []string
}

// Upload sends files with the upload extension through the uploader and
// deletes them after a successful invocation.
//
// With Album set, all files go out in one invocation and are deleted together.
// Otherwise part files are grouped by base name, each group is one album, and
// every other file is uploaded on its own. Groups and standalone files succeed
// or fail independently.
func (b *Batch) Upload(ctx context.Context, dir string, opts UploadOptions) (Stats, error) {
	var stats Stats

	files, err := Scan(dir)
	if err != nil {
		return stats, err
	}

	candidates := filterExt(files, b.cfg.Upload.Extension)
	if len(candidates) == 0 {
		b.logger.Info(fmt.Sprintf("no %s files found in the specified folder", b.cfg.Upload.Extension), "dir", dir)
		return stats, nil
	}

	extra := append(append([]string(nil), b.cfg.Upload.ExtraArgs...), opts.ExtraArgs...)

	if opts.Album {
		if !b.interrupted(ctx) {
			b.record(&stats, b.uploadAlbum(ctx, dir, candidates, extra))
		}
		return stats, nil
	}

	groups := grouper.Group(candidates)
	for _, g := range groups.Groups {
		if b.interrupted(ctx) {
			return stats, nil
		}
		b.record(&stats, b.uploadAlbum(ctx, "parts of "+g.Base, g.Files, extra))
	}
	for _, f := range groups.Standalone {
		if b.interrupted(ctx) {
			return stats, nil
		}
		b.record(&stats, b.uploadStandalone(ctx, f, extra))
	}
	return stats, nil
}

// uploadAlbum uploads files in one invocation and deletes all of them on
// success. Nothing is deleted on failure.
func (b *Batch) uploadAlbum(ctx context.Context, name string, files []models.MediaFile, extra []string) Outcome {
	b.logger.Info("uploading album", "item", name, "files", len(files))

	cmd := upload.NewUploadBuilder(models.Paths(files)...).
		SetBinary(b.cfg.Tools.Uploader).
		SetAlbum(true).
		SetExtraArgs(extra)

	res := b.exec(ctx, cmd)
	if !res.OK() {
		return Outcome{Name: name, Status: StatusFailed, Message: "error uploading " + name, Err: toolError(res.Err, res.ExitCode)}
	}
	if b.cfg.DryRun {
		return Outcome{Name: name, Status: StatusSucceeded, Message: fmt.Sprintf("would upload %s (%d files)", name, len(files))}
	}

	var failed []string
	for _, f := range files {
		if err := remove(f.Path); err != nil {
			b.logger.Error("could not delete uploaded file", "file", f.Name(), "error", err)
			failed = append(failed, f.Name())
		}
	}
	if len(failed) > 0 {
		return Outcome{Name: name, Status: StatusFailed, Message: "uploaded but could not delete all files of " + name,
			Err: errors.Errorf("not deleted: %v", failed)}
	}
	return Outcome{Name: name, Status: StatusSucceeded, Message: fmt.Sprintf("uploaded and deleted %s (%d files)", name, len(files))}
}

// uploadStandalone uploads one file with the uploader's own delete flag.
func (b *Batch) uploadStandalone(ctx context.Context, f models.MediaFile, extra []string) Outcome {
	b.logger.Info("uploading", "file", f.Name())

	cmd := upload.NewUploadBuilder(f.Path).
		SetBinary(b.cfg.Tools.Uploader).
		SetDeleteAfter(true).
		SetExtraArgs(extra)

	res := b.exec(ctx, cmd)
	if !res.OK() {
		return Outcome{Name: f.Name(), Status: StatusFailed, Message: "error uploading " + f.Name(), Err: toolError(res.Err, res.ExitCode)}
	}
	if b.cfg.DryRun {
		return Outcome{Name: f.Name(), Status: StatusSucceeded, Message: "would upload " + f.Name()}
	}
	if err := remove(f.Path); err != nil {
		return Outcome{Name: f.Name(), Status: StatusFailed, Message: "uploaded but could not delete " + f.Name(), Err: err}
	}
	return Outcome{Name: f.Name(), Status: StatusSucceeded, Message: "uploaded " + f.Name()}
}
