package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"jtools/models"
)

// DirError reports a batch folder that does not exist or is not a directory.
type DirError struct {
	Path string
	Err  error
}

func (e *DirError) Error() string {
	return fmt.Sprintf("%s is not a directory: %v", e.Path, e.Err)
}

func (e *DirError) Unwrap() error { return e.Err }

// Scan lists the regular files directly inside dir. Subdirectories are not
// descended into. Order follows the directory listing.
func Scan(dir string) ([]models.MediaFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &DirError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &DirError{Path: dir, Err: errors.New("not a directory")}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &DirError{Path: dir, Err: err}
	}

	var files []models.MediaFile
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			// removed between listing and stat
			continue
		}
		path := filepath.Join(dir, entry.Name())
		files = append(files, models.NewMediaFile(path, fi))
	}
	return files, nil
}

// filterExt returns the files whose extension matches ext, ignoring case.
func filterExt(files []models.MediaFile, ext string) []models.MediaFile {
	var out []models.MediaFile
	for _, f := range files {
		if f.HasExt(ext) {
			out = append(out, f)
		}
	}
	return out
}

// remove deletes path. A file that is already gone counts as removed.
func remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
