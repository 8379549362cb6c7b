package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "convert <folder>",
		Aliases: []string{"convert-vids"},
		Short:   "Remux videos in a folder into the target container",
		Long: `Remux every file in the folder whose extension is one of the configured
source extensions (.mov, .avi, .mkv by default) into the target container
(.mp4) without re-encoding. The original is deleted after a successful remux.`,
		Args: cobra.ExactArgs(1),
		RunE: withSetup(a, func(cmd *cobra.Command, args []string) error {
			a.banner("jtools convert " + strings.Join(a.cfg.Convert.SourceExtensions, ",") + " → " + a.cfg.Convert.TargetExtension)

			stats, err := a.newBatch().Convert(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.summary("convert", stats)
			return nil
		}),
	}
}
