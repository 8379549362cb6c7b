// Package upload builds telegram-upload invocations.
//
// Two shapes are used:
//
//	telegram-upload --album [passthrough...] <file> <file> ...
//	telegram-upload -d [passthrough...] <file>
package upload

import (
	"fmt"
	"strings"

	"jtools/command"
)

// DefaultBinary is the upload tool looked up in PATH.
const DefaultBinary = "telegram-upload"

// UploadBuilder builds one upload tool invocation.
type UploadBuilder struct {
	binary      string
	files       []string
	album       bool
	deleteAfter bool
	extraArgs   []string
}

// NewUploadBuilder creates an UploadBuilder for files, in the given order.
func NewUploadBuilder(files ...string) *UploadBuilder {
	return &UploadBuilder{
		binary: DefaultBinary,
		files:  append([]string(nil), files...),
	}
}

// SetBinary overrides the upload executable.
func (u *UploadBuilder) SetBinary(binary string) *UploadBuilder {
	if binary != "" {
		u.binary = binary
	}
	return u
}

// SetAlbum sends all files as one album (--album).
func (u *UploadBuilder) SetAlbum(album bool) *UploadBuilder {
	u.album = album
	return u
}

// SetDeleteAfter asks the tool to delete the file after uploading (-d).
func (u *UploadBuilder) SetDeleteAfter(del bool) *UploadBuilder {
	u.deleteAfter = del
	return u
}

// SetExtraArgs sets flags forwarded verbatim to the tool.
func (u *UploadBuilder) SetExtraArgs(args []string) *UploadBuilder {
	u.extraArgs = append([]string(nil), args...)
	return u
}

// BuildArgs implements command.Command.
func (u *UploadBuilder) BuildArgs() []string {
	var args []string
	if u.album {
		args = append(args, "--album")
	}
	if u.deleteAfter {
		args = append(args, "-d")
	}
	args = append(args, u.extraArgs...)
	return append(args, u.files...)
}

// Binary implements command.Command.
func (u *UploadBuilder) Binary() string { return u.binary }

// DryRun implements command.Command.
func (u *UploadBuilder) DryRun() string {
	return fmt.Sprintf("%s %s", u.binary, strings.Join(u.BuildArgs(), " "))
}

// GetTaskType implements command.Command.
func (u *UploadBuilder) GetTaskType() command.TaskType { return command.TaskTypeUpload }

// GetOutputPath implements command.Command. Uploads write no local file.
func (u *UploadBuilder) GetOutputPath() string { return "" }

// Files returns the files passed to the tool.
func (u *UploadBuilder) Files() []string { return append([]string(nil), u.files...) }
