package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"jtools/batch"
)

func newUploadCmd(a *app) *cobra.Command {
	var album bool

	cmd := &cobra.Command{
		Use:     "upload <folder> [--album] [-- telegram-upload flags...]",
		Aliases: []string{"upload-vids"},
		Short:   "Upload videos with telegram-upload and delete them afterwards",
		Long: `Upload every .mp4 file in the folder with telegram-upload.

By default the parts of each split video are sent together as one album, in
part order, and every other file is sent on its own. With --album all files
go out as a single album. Files are deleted only after telegram-upload
succeeds. Arguments after "--" are passed to telegram-upload.`,
		Args: func(cmd *cobra.Command, args []string) error {
			positional := args
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				positional = args[:dash]
			}
			if len(positional) != 1 {
				return errors.Errorf("accepts 1 folder argument before \"--\", received %d", len(positional))
			}
			return nil
		},
		RunE: withSetup(a, func(cmd *cobra.Command, args []string) error {
			var extra []string
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				extra = args[dash:]
			}

			a.banner("jtools upload")
			stats, err := a.newBatch().Upload(cmd.Context(), args[0], batch.UploadOptions{
				Album:     album,
				ExtraArgs: extra,
			})
			if err != nil {
				return err
			}
			a.summary("upload", stats)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&album, "album", false, "upload all files as a single album")
	return cmd
}
