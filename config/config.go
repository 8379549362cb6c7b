// Package config holds jtools configuration: which tool binaries to run,
// which file extensions each batch mode works on, and where the credential
// and session files live.
package config

import (
	"os"
	"path/filepath"
)

const (
	// CredentialsFileName is the default credential file, kept beside the program.
	CredentialsFileName = "jtools_credentials.yaml"

	// SessionFileName is the default messaging session file, kept beside the program.
	SessionFileName = "jtools.session"
)

// Config holds all jtools configuration options
type Config struct {
	Tools   ToolsConfig   `yaml:"tools"`
	Convert ConvertConfig `yaml:"convert"`
	Split   SplitConfig   `yaml:"split"`
	Upload  UploadConfig  `yaml:"upload"`

	CredentialsFile string `yaml:"credentials_file"` // empty = beside the executable
	SessionFile     string `yaml:"session_file"`     // empty = beside the executable
	LogFile         string `yaml:"log_file"`         // optional append-only log

	// Behavioral flags
	Overwrite bool `yaml:"overwrite"` // let ffmpeg replace existing outputs (-y)
	Verbose   bool `yaml:"verbose"`   // debug logging
	DryRun    bool `yaml:"dry_run"`   // print mutating commands, delete nothing
}

// ToolsConfig names the external executables.
type ToolsConfig struct {
	FFmpeg   string `yaml:"ffmpeg"`
	FFprobe  string `yaml:"ffprobe"`
	Uploader string `yaml:"uploader"`
	WhoAmI   string `yaml:"whoami"` // identity helper printing the account as JSON
}

// ConvertConfig controls the convert batch.
type ConvertConfig struct {
	SourceExtensions []string `yaml:"source_extensions"`
	TargetExtension  string   `yaml:"target_extension"`
}

// SplitConfig controls the split batch.
type SplitConfig struct {
	Extension string `yaml:"extension"`
}

// UploadConfig controls the upload batch.
type UploadConfig struct {
	Extension string   `yaml:"extension"`
	ExtraArgs []string `yaml:"extra_args"` // always forwarded, before command-line passthrough
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Tools: ToolsConfig{
			FFmpeg:   "ffmpeg",
			FFprobe:  "ffprobe",
			Uploader: "telegram-upload",
			WhoAmI:   "jtools-whoami",
		},
		Convert: ConvertConfig{
			SourceExtensions: []string{".mov", ".avi", ".mkv"},
			TargetExtension:  ".mp4",
		},
		Split: SplitConfig{
			Extension: ".mp4",
		},
		Upload: UploadConfig{
			Extension: ".mp4",
		},
	}
}

// Copy creates a deep copy of the config
func (c *Config) Copy() *Config {
	cp := *c
	cp.Convert.SourceExtensions = append([]string(nil), c.Convert.SourceExtensions...)
	cp.Upload.ExtraArgs = append([]string(nil), c.Upload.ExtraArgs...)
	return &cp
}

// ProgramDir returns the directory of the running executable, or the working
// directory if it cannot be determined.
func ProgramDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// resolvePaths fills in default credential and session locations.
func (c *Config) resolvePaths(programDir string) {
	if c.CredentialsFile == "" {
		c.CredentialsFile = filepath.Join(programDir, CredentialsFileName)
	}
	if c.SessionFile == "" {
		c.SessionFile = filepath.Join(programDir, SessionFileName)
	}
}
