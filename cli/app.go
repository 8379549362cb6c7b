package cli

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"jtools/batch"
	"jtools/config"
	"jtools/credentials"
	"jtools/display"
	"jtools/logging"
	"jtools/runner"
)

// Deps are the outside-world collaborators of the command tree. Zero values
// select the real implementations.
type Deps struct {
	In  io.Reader
	Out io.Writer

	// Runner replaces process execution.
	Runner runner.Runner

	// Provider supplies credentials on first run. Defaults to JTOOLS_API_ID /
	// JTOOLS_API_HASH when both are set, otherwise an interactive prompt.
	Provider credentials.Provider
}

func (d Deps) withDefaults() Deps {
	if d.In == nil {
		d.In = os.Stdin
	}
	if d.Out == nil {
		d.Out = os.Stdout
	}
	return d
}

// app is the state shared by one command invocation.
type app struct {
	deps  Deps
	flags config.Flags

	cfg     *config.Config
	creds   credentials.Credentials
	logger  hclog.Logger
	closer  io.Closer
	runner  runner.Runner
	printer *display.Printer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newApp(deps Deps) *app {
	deps = deps.withDefaults()
	return &app{
		deps:    deps,
		printer: display.NewPrinter(deps.Out),
		closer:  nopCloser{},
	}
}

// setup loads configuration and credentials. Any error here is a
// configuration error and stops the command before batch work starts.
func (a *app) setup(ctx context.Context) error {
	cfg, err := config.LoadConfig(a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, closer, err := logging.NewWithOutput(cfg, a.deps.Out)
	if err != nil {
		return err
	}
	a.logger = logger.With("run_id", uuid.New().String())
	a.closer = closer

	r := a.deps.Runner
	if r == nil {
		r = runner.NewExecRunner(a.logger.Named("exec"))
	}
	if cfg.DryRun {
		r = runner.NewDryRunner(r, a.logger.Named("dry-run"))
	}
	a.runner = r

	provider, err := a.provider()
	if err != nil {
		return err
	}
	creds, err := credentials.LoadOrObtain(ctx, credentials.NewStore(cfg.CredentialsFile), provider)
	if err != nil {
		return err
	}
	a.creds = creds

	a.logger.Debug("configuration loaded",
		"credentials", cfg.CredentialsFile,
		"dry_run", cfg.DryRun,
		"overwrite", cfg.Overwrite)
	return nil
}

func (a *app) provider() (credentials.Provider, error) {
	if a.deps.Provider != nil {
		return a.deps.Provider, nil
	}
	p, ok, err := credentials.EnvProvider()
	if err != nil {
		return nil, err
	}
	if ok {
		return p, nil
	}
	return &credentials.PromptProvider{In: a.deps.In, Out: a.deps.Out}, nil
}

func (a *app) close() {
	if err := a.closer.Close(); err != nil && a.logger != nil {
		a.logger.Warn("failed to close log file", "error", err)
	}
}

func (a *app) newBatch() *batch.Batch {
	return batch.New(a.cfg, a.runner, a.logger).OnOutcome(a.report)
}

// report prints one styled line per batch item.
func (a *app) report(o batch.Outcome) {
	switch o.Status {
	case batch.StatusSucceeded:
		a.printer.Success("%s", o.Message)
	case batch.StatusSkipped:
		a.printer.Skip("%s", o.Message)
	default:
		if o.Err != nil {
			a.printer.Failure("%s: %v", o.Message, o.Err)
		} else {
			a.printer.Failure("%s", o.Message)
		}
	}
}

func (a *app) summary(mode string, s batch.Stats) {
	a.printer.Summary(mode, display.Tally{
		Total:     s.Total,
		Succeeded: s.Succeeded,
		Failed:    s.Failed,
		Skipped:   s.Skipped,
	})
}

func (a *app) banner(title string) {
	if a.cfg.DryRun {
		title += " (dry run)"
	}
	a.printer.Banner(title)
}
