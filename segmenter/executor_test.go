package segmenter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jtools/chunker"
	"jtools/models"
	"jtools/runner"
)

// fakeFFmpeg writes the output file (last argument) of every successful call.
func fakeFFmpeg(t *testing.T, results ...runner.Result) *runner.FakeRunner {
	t.Helper()
	f := runner.NewFakeRunner().Script("ffmpeg", results...)
	f.OnRun = func(c runner.Cmd, res runner.Result) {
		if !res.OK() || len(c.Args) == 0 {
			return
		}
		out := c.Args[len(c.Args)-1]
		require.NoError(t, os.WriteFile(out, []byte("part"), 0o644))
	}
	return f
}

func sourceFile(t *testing.T, dir, name string) models.MediaFile {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, make([]byte, 1024), 0o644))
	info, err := os.Stat(path)
	require.NoError(t, err)
	return models.NewMediaFile(path, info)
}

func plan(t *testing.T, parts int, duration float64) []models.Segment {
	t.Helper()
	segs, err := chunker.EvenSegments(duration, parts)
	require.NoError(t, err)
	return segs
}

func TestSplit_AllPartsSucceed(t *testing.T) {
	dir := t.TempDir()
	src := sourceFile(t, dir, "clip.mp4")
	fake := fakeFFmpeg(t)

	res := NewExecutor(fake, Options{}, nil).Split(context.Background(), src, plan(t, 3, 90))

	assert.True(t, res.Succeeded())
	assert.True(t, res.Completed)
	assert.True(t, res.SourceDeleted)
	assert.NoError(t, res.Err)
	assert.NoFileExists(t, src.Path)

	for _, name := range []string{"clip (part 01).mp4", "clip (part 02).mp4", "clip (part 03).mp4"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "exactly N new files and no original")

	calls := fake.CallsTo("ffmpeg")
	require.Len(t, calls, 3)
	assert.Equal(t, []string{
		"-i", src.Path, "-ss", "30", "-t", "30", "-c", "copy", filepath.Join(dir, "clip (part 02).mp4"),
	}, calls[1].Args)
}

func TestSplit_FailureKeepsOriginalAndEarlierParts(t *testing.T) {
	dir := t.TempDir()
	src := sourceFile(t, dir, "clip.mp4")
	fake := fakeFFmpeg(t, runner.Exit(0), runner.Exit(1), runner.Exit(0))

	res := NewExecutor(fake, Options{}, nil).Split(context.Background(), src, plan(t, 3, 90))

	assert.False(t, res.Succeeded())
	assert.False(t, res.Completed)
	assert.False(t, res.SourceDeleted)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "error creating part 2 of clip.mp4")

	assert.FileExists(t, src.Path)
	assert.FileExists(t, filepath.Join(dir, "clip (part 01).mp4"))
	assert.NoFileExists(t, filepath.Join(dir, "clip (part 03).mp4"))

	assert.Len(t, fake.CallsTo("ffmpeg"), 2, "remaining segments must not be attempted")
	require.Len(t, res.Parts, 2)
	assert.True(t, res.Parts[0].Succeeded())
	assert.False(t, res.Parts[1].Succeeded())
	assert.Equal(t, []string{filepath.Join(dir, "clip (part 01).mp4")}, res.Written())
}

func TestSplit_FirstPartFails(t *testing.T) {
	dir := t.TempDir()
	src := sourceFile(t, dir, "clip.mp4")
	fake := fakeFFmpeg(t, runner.Result{ExitCode: -1, Err: assert.AnError})

	res := NewExecutor(fake, Options{}, nil).Split(context.Background(), src, plan(t, 2, 10))

	assert.False(t, res.Succeeded())
	assert.FileExists(t, src.Path)
	assert.Empty(t, res.Written())
	assert.ErrorIs(t, res.Err, assert.AnError)
}

func TestSplit_DryRunKeepsSource(t *testing.T) {
	dir := t.TempDir()
	src := sourceFile(t, dir, "clip.mp4")
	fake := fakeFFmpeg(t)

	res := NewExecutor(fake, Options{DryRun: true}, nil).Split(context.Background(), src, plan(t, 2, 10))

	assert.True(t, res.Succeeded())
	assert.False(t, res.SourceDeleted)
	assert.FileExists(t, src.Path)
}

func TestSplit_Options(t *testing.T) {
	dir := t.TempDir()
	src := sourceFile(t, dir, "clip.mp4")
	fake := runner.NewFakeRunner()

	NewExecutor(fake, Options{FFmpeg: "/opt/ffmpeg", Overwrite: true, DryRun: true}, nil).
		Split(context.Background(), src, plan(t, 1, 10))

	calls := fake.CallsTo("/opt/ffmpeg")
	require.Len(t, calls, 1)
	assert.Equal(t, "-y", calls[0].Args[0])
}

func TestSplit_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	src := sourceFile(t, dir, "clip.mp4")
	fake := fakeFFmpeg(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewExecutor(fake, Options{}, nil).Split(ctx, src, plan(t, 3, 30))

	assert.False(t, res.Succeeded())
	assert.Empty(t, fake.Calls)
	assert.FileExists(t, src.Path)
	assert.ErrorIs(t, res.Err, context.Canceled)
}

func TestSplit_NoSegments(t *testing.T) {
	dir := t.TempDir()
	src := sourceFile(t, dir, "clip.mp4")

	res := NewExecutor(runner.NewFakeRunner(), Options{}, nil).Split(context.Background(), src, nil)

	assert.False(t, res.Succeeded())
	assert.FileExists(t, src.Path)
}
