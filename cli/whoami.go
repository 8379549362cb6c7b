package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"jtools/session"
)

func newWhoAmICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the Telegram account jtools uploads as",
		Args:  cobra.NoArgs,
		RunE: withSetup(a, func(cmd *cobra.Command, args []string) error {
			resolver := session.NewCommandResolver(a.runner, a.cfg.Tools.WhoAmI, a.cfg.SessionFile, a.logger.Named("session"))

			id, err := resolver.WhoAmI(cmd.Context(), a.creds)
			if err != nil {
				return err
			}
			for _, line := range id.Lines() {
				fmt.Fprintln(a.deps.Out, line)
			}
			return nil
		}),
	}
}
