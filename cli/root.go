// Package cli defines the jtools command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jtools/display"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitInterrupted = 130
)

// NewRootCmd builds the jtools command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	a := newApp(deps)

	root := &cobra.Command{
		Use:   "jtools",
		Short: "Batch media tools: convert, split and upload videos",
		Long: `jtools converts video containers, splits large videos into parts and
uploads them to a Telegram account through telegram-upload, deleting local
files once the external tool reports success.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetIn(a.deps.In)
	root.SetOut(a.deps.Out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.ConfigPath, "config", "", "config file (default: ./jtools.yaml, ~/.jtools/config.yaml, /etc/jtools/config.yaml)")
	pf.StringVar(&a.flags.CredentialsFile, "credentials", "", "credentials file (default: jtools_credentials.yaml beside the program)")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&a.flags.DryRun, "dry-run", false, "print what would run; probe files but never convert, split, upload or delete")
	pf.BoolVarP(&a.flags.Overwrite, "yes", "y", false, "let ffmpeg overwrite existing output files")

	root.AddCommand(
		newWhoAmICmd(a),
		newConvertCmd(a),
		newSplitCmd(a),
		newUploadCmd(a),
	)
	return root
}

// Execute runs jtools with os.Args and returns the process exit code.
func Execute(ctx context.Context) int {
	root := NewRootCmd(Deps{})
	err := root.ExecuteContext(ctx)

	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "interrupted")
		return ExitInterrupted
	}
	if err != nil {
		display.NewPrinter(os.Stderr).Failure("Error: %v", err)
		return ExitError
	}
	return ExitOK
}

// withSetup wraps a subcommand body with configuration loading and cleanup.
func withSetup(a *app, run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.setup(cmd.Context()); err != nil {
			a.close()
			return err
		}
		defer a.close()
		return run(cmd, args)
	}
}
