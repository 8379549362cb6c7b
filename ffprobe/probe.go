// Package ffprobe queries media metadata using the ffprobe command-line tool.
package ffprobe

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"jtools/runner"
)

// DefaultBinary is the ffprobe executable looked up in PATH.
const DefaultBinary = "ffprobe"

// ProbeError reports that the duration of a file could not be determined.
// It is never fatal for a batch: the file is skipped.
type ProbeError struct {
	Path   string
	Output string
	Err    error
}

func (e *ProbeError) Error() string {
	return "probe " + e.Path + ": " + e.Err.Error()
}

func (e *ProbeError) Unwrap() error { return e.Err }

// Prober runs ffprobe through a runner.Runner.
type Prober struct {
	binary string
	run    runner.Runner
	logger hclog.Logger
}

// NewProber creates a Prober. An empty binary means DefaultBinary.
func NewProber(r runner.Runner, binary string, logger hclog.Logger) *Prober {
	if binary == "" {
		binary = DefaultBinary
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Prober{binary: binary, run: r, logger: logger}
}

// BuildArgs returns the ffprobe arguments that print only the container
// duration as a bare number.
//
// -v error: suppress the banner and warnings
// -show_entries format=duration: only the container-level duration field
// -of default=noprint_wrappers=1:nokey=1: no [FORMAT] wrapper, no "duration=" key
func BuildArgs(path string) []string {
	return []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
}

// Duration returns the playback duration of path in seconds.
//
// Any failure (ffprobe missing, non-zero exit, "N/A" or otherwise
// unparsable output, non-positive value) is returned as *ProbeError.
func (p *Prober) Duration(ctx context.Context, path string) (float64, error) {
	if path == "" {
		return 0, &ProbeError{Path: path, Err: errors.New("source path cannot be empty")}
	}

	res := p.run.Run(ctx, runner.Cmd{
		Name:    p.binary,
		Args:    BuildArgs(path),
		Capture: true,
	})
	if !res.OK() {
		err := res.Err
		if err == nil {
			err = errors.Errorf("%s exited with status %d", p.binary, res.ExitCode)
		}
		return 0, &ProbeError{Path: path, Output: strings.TrimSpace(res.Stderr), Err: err}
	}

	d, err := ParseDuration(res.Stdout)
	if err != nil {
		return 0, &ProbeError{Path: path, Output: strings.TrimSpace(res.Stdout), Err: err}
	}

	p.logger.Debug("probed duration", "path", path, "seconds", d)
	return d, nil
}

// ParseDuration parses the single-token ffprobe duration output.
func ParseDuration(out string) (float64, error) {
	token := strings.TrimSpace(out)
	if token == "" {
		return 0, errors.New("duration not available in format metadata")
	}

	d, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse duration '%s'", token)
	}
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return 0, errors.Errorf("invalid duration '%s'", token)
	}
	return d, nil
}
