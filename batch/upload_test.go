package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jtools/config"
	"jtools/runner"
)

const uploader = "telegram-upload"

func paths(dir string, names ...string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = filepath.Join(dir, n)
	}
	return out
}

func TestUpload_AlbumSuccessDeletesAll(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{"a.mp4": 1, "b.mp4": 1, "notes.txt": 1})

	fake := runner.NewFakeRunner()
	b, _ := newBatch(fake)

	stats, err := b.Upload(context.Background(), dir, UploadOptions{Album: true, ExtraArgs: []string{"--to", "me"}})
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 1, Succeeded: 1}, stats)

	calls := fake.CallsTo(uploader)
	require.Len(t, calls, 1)
	assert.Equal(t, append([]string{"--album", "--to", "me"}, paths(dir, "a.mp4", "b.mp4")...), calls[0].Args)
	assert.Equal(t, []string{"notes.txt"}, listDir(t, dir))
}

func TestUpload_AlbumFailureDeletesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{"a.mp4": 1, "b.mp4": 1})

	fake := runner.NewFakeRunner().Script(uploader, runner.Exit(1))
	b, _ := newBatch(fake)

	stats, err := b.Upload(context.Background(), dir, UploadOptions{Album: true})
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 1, Failed: 1}, stats)
	assert.Equal(t, []string{"a.mp4", "b.mp4"}, listDir(t, dir))
}

func TestUpload_GroupsAndStandalone(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{
		"movie (part 10).mp4": 1,
		"movie (part 02).mp4": 1,
		"movie (part 1).mp4":  1,
		"clip.mp4":            1,
		"show (part 01).mp4":  1,
		"show (part 02).mp4":  1,
	})

	fake := runner.NewFakeRunner()
	b, _ := newBatch(fake)

	stats, err := b.Upload(context.Background(), dir, UploadOptions{})
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 3, Succeeded: 3}, stats)

	calls := fake.CallsTo(uploader)
	require.Len(t, calls, 3)
	assert.Equal(t, append([]string{"--album"}, paths(dir, "movie (part 1).mp4", "movie (part 02).mp4", "movie (part 10).mp4")...), calls[0].Args)
	assert.Equal(t, append([]string{"--album"}, paths(dir, "show (part 01).mp4", "show (part 02).mp4")...), calls[1].Args)
	assert.Equal(t, append([]string{"-d"}, paths(dir, "clip.mp4")...), calls[2].Args)
	assert.Empty(t, listDir(t, dir))
}

func TestUpload_GroupsAreIndependent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{
		"a (part 01).mp4": 1,
		"a (part 02).mp4": 1,
		"b (part 01).mp4": 1,
		"b (part 02).mp4": 1,
		"solo.mp4":        1,
	})

	fake := runner.NewFakeRunner().Script(uploader, runner.Exit(1), runner.Exit(0), runner.Exit(2))
	b, outcomes := newBatch(fake)

	stats, err := b.Upload(context.Background(), dir, UploadOptions{})
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 3, Succeeded: 1, Failed: 2}, stats)

	assert.Equal(t, []string{"a (part 01).mp4", "a (part 02).mp4", "solo.mp4"}, listDir(t, dir))
	require.Len(t, *outcomes, 3)
	assert.Equal(t, "parts of a", (*outcomes)[0].Name)
	assert.Equal(t, StatusFailed, (*outcomes)[0].Status)
	assert.Equal(t, StatusSucceeded, (*outcomes)[1].Status)
}

func TestUpload_StandaloneAlreadyRemovedByUploader(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{"solo.mp4": 1})

	fake := runner.NewFakeRunner()
	fake.OnRun = func(c runner.Cmd, res runner.Result) {
		// telegram-upload -d removes the file itself
		require.NoError(t, os.Remove(c.Args[len(c.Args)-1]))
	}
	b, _ := newBatch(fake)

	stats, err := b.Upload(context.Background(), dir, UploadOptions{})
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 1, Succeeded: 1}, stats)
}

func TestUpload_ConfiguredArgsPrecedePassthrough(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{"solo.mp4": 1})

	fake := runner.NewFakeRunner()
	b, _ := newBatch(fake, func(cfg *config.Config) {
		cfg.Tools.Uploader = "tgup"
		cfg.Upload.ExtraArgs = []string{"--to", "channel"}
	})

	_, err := b.Upload(context.Background(), dir, UploadOptions{ExtraArgs: []string{"--caption", "x"}})
	require.NoError(t, err)

	calls := fake.CallsTo("tgup")
	require.Len(t, calls, 1)
	assert.Equal(t, append([]string{"-d", "--to", "channel", "--caption", "x"}, paths(dir, "solo.mp4")...), calls[0].Args)
}

func TestUpload_NoFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{"a.mkv": 1})

	fake := runner.NewFakeRunner()
	b, _ := newBatch(fake)

	for _, album := range []bool{true, false} {
		stats, err := b.Upload(context.Background(), dir, UploadOptions{Album: album})
		require.NoError(t, err)
		assert.Equal(t, Stats{}, stats)
	}
	assert.Empty(t, fake.Calls)
}

func TestUpload_DryRunDeletesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{"a (part 01).mp4": 1, "solo.mp4": 1})

	inner := runner.NewFakeRunner()
	b, _ := newBatch(runner.NewDryRunner(inner, nil), dryRun)

	stats, err := b.Upload(context.Background(), dir, UploadOptions{})
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 2, Succeeded: 2}, stats)
	assert.Empty(t, inner.Calls)
	assert.Equal(t, []string{"a (part 01).mp4", "solo.mp4"}, listDir(t, dir))
}

func TestUpload_CancelledBeforeStart(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{"a.mp4": 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := runner.NewFakeRunner()
	b, _ := newBatch(fake)

	for _, album := range []bool{true, false} {
		stats, err := b.Upload(ctx, dir, UploadOptions{Album: album})
		require.NoError(t, err)
		assert.Zero(t, stats.Total)
	}
	assert.Empty(t, fake.Calls)
}
