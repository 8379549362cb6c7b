package models

import (
	"os"
	"path/filepath"
	"strings"
)

// MediaFile is a file enumerated from a batch directory. Its identity is its
// path; jtools never modifies a MediaFile, it only reads or deletes it.
type MediaFile struct {
	Path string
	Ext  string // as found on disk, including the dot
	Size int64
}

// NewMediaFile builds a MediaFile from a path and its FileInfo.
func NewMediaFile(path string, info os.FileInfo) MediaFile {
	return MediaFile{
		Path: path,
		Ext:  filepath.Ext(path),
		Size: info.Size(),
	}
}

// Name returns the base name.
func (m MediaFile) Name() string {
	return filepath.Base(m.Path)
}

// Stem returns the base name without extension.
func (m MediaFile) Stem() string {
	return strings.TrimSuffix(m.Name(), m.Ext)
}

// HasExt reports whether the file's extension equals ext, ignoring case.
func (m MediaFile) HasExt(ext string) bool {
	return strings.EqualFold(m.Ext, ext)
}

// Paths returns the paths of files, in order.
func Paths(files []MediaFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}
