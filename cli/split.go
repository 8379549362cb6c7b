package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"jtools/display"
	"jtools/models"
)

const (
	bytesPerMB = 1 << 20
	bytesPerGB = 1 << 30
)

type splitOptions struct {
	numParts      int
	partSizeGB    float64
	sizeToSplitMB float64
}

// request converts the flags into a SplitRequest.
func (o splitOptions) request(cmd *cobra.Command) (models.SplitRequest, error) {
	if o.sizeToSplitMB < 0 {
		return models.SplitRequest{}, errors.New("--size-to-split cannot be negative")
	}
	threshold := int64(o.sizeToSplitMB * bytesPerMB)

	if cmd.Flags().Changed("num-parts") {
		return models.NewPartCountRequest(o.numParts, threshold)
	}
	if o.partSizeGB <= 0 {
		return models.SplitRequest{}, errors.New("--part-size-gb must be positive")
	}
	return models.NewPartSizeRequest(int64(o.partSizeGB*bytesPerGB), threshold)
}

func newSplitCmd(a *app) *cobra.Command {
	var opts splitOptions

	cmd := &cobra.Command{
		Use:     "split <folder> (-n N | -s GB)",
		Aliases: []string{"split-vids"},
		Short:   "Split large videos into parts",
		Long: `Split every .mp4 file in the folder that is larger than --size-to-split
into "<name> (part NN).mp4" files, either into a fixed number of parts (-n) or
into floor(size/part-size)+1 parts of roughly equal duration (-s). The
original is deleted only when every part was written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.request(cmd)
			if err != nil {
				return err
			}
			return withSetup(a, func(cmd *cobra.Command, args []string) error {
				switch req.Mode {
				case models.ModePartCount:
					a.banner("jtools split into parts")
					a.logger.Info("split request", "parts", req.PartCount, "threshold", display.FormatBytes(req.Threshold))
				default:
					a.banner("jtools split by size")
					a.logger.Info("split request", "part_size", display.FormatBytes(req.PartSize), "threshold", display.FormatBytes(req.Threshold))
				}

				stats, err := a.newBatch().Split(cmd.Context(), args[0], req)
				if err != nil {
					return err
				}
				a.summary("split", stats)
				return nil
			})(cmd, args)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.numParts, "num-parts", "n", 0, "number of parts to split into")
	f.Float64VarP(&opts.partSizeGB, "part-size-gb", "s", 0, "target part size in GB; split into as many parts as needed")
	f.Float64Var(&opts.sizeToSplitMB, "size-to-split", 0, "only split files larger than this many MB")
	cmd.MarkFlagsMutuallyExclusive("num-parts", "part-size-gb")
	cmd.MarkFlagsOneRequired("num-parts", "part-size-gb")

	return cmd
}
