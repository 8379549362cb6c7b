// Package logging builds the hclog logger shared by every jtools component.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"jtools/config"
)

// Name is the root logger name.
const Name = "jtools"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to stdout, and additionally appending to
// cfg.LogFile when one is set. The returned closer releases the log file.
func New(cfg *config.Config) (hclog.Logger, io.Closer, error) {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput is New with a different console writer.
func NewWithOutput(cfg *config.Config, stdout io.Writer) (hclog.Logger, io.Closer, error) {
	var (
		out    = stdout
		closer io.Closer = nopCloser{}
	)

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, nil, errors.Wrap(err, "failed to create log directory")
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to open log file")
		}
		out = io.MultiWriter(stdout, f)
		closer = f
	}

	level := hclog.Info
	if cfg.Verbose {
		level = hclog.Debug
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Level:  level,
		Output: out,
	})
	return logger, closer, nil
}
