package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var problems []string

	// Tools
	for name, bin := range map[string]string{
		"ffmpeg":   c.Tools.FFmpeg,
		"ffprobe":  c.Tools.FFprobe,
		"uploader": c.Tools.Uploader,
		"whoami":   c.Tools.WhoAmI,
	} {
		if strings.TrimSpace(bin) == "" {
			problems = append(problems, fmt.Sprintf("tools.%s is required", name))
		}
	}

	// Convert
	if len(c.Convert.SourceExtensions) == 0 {
		problems = append(problems, "convert.source_extensions cannot be empty")
	}
	for _, ext := range c.Convert.SourceExtensions {
		if !isValidExtension(ext) {
			problems = append(problems, fmt.Sprintf("convert.source_extensions: invalid extension '%s'", ext))
		}
		if strings.EqualFold(ext, c.Convert.TargetExtension) {
			problems = append(problems, fmt.Sprintf("convert.source_extensions cannot contain the target extension '%s'", ext))
		}
	}
	if !isValidExtension(c.Convert.TargetExtension) {
		problems = append(problems, fmt.Sprintf("convert.target_extension: invalid extension '%s'", c.Convert.TargetExtension))
	}

	// Split / upload
	if !isValidExtension(c.Split.Extension) {
		problems = append(problems, fmt.Sprintf("split.extension: invalid extension '%s'", c.Split.Extension))
	}
	if !isValidExtension(c.Upload.Extension) {
		problems = append(problems, fmt.Sprintf("upload.extension: invalid extension '%s'", c.Upload.Extension))
	}

	if strings.TrimSpace(c.CredentialsFile) == "" {
		problems = append(problems, "credentials_file is required")
	}

	if len(problems) > 0 {
		// map iteration above is unordered
		sort.Strings(problems)
		return errors.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}

	return nil
}

// isValidExtension accepts ".ext" with no further dots or separators.
func isValidExtension(ext string) bool {
	if len(ext) < 2 || ext[0] != '.' {
		return false
	}
	return !strings.ContainsAny(ext[1:], `./\ `)
}

// HasSourceExtension reports whether ext is one of the convert source
// extensions, ignoring case.
func (c *Config) HasSourceExtension(ext string) bool {
	for _, e := range c.Convert.SourceExtensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
