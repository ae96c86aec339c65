package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/elharo/eclipse/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [files...]",
		Short: "Aggregate build info files into a label-keyed report",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := c.aggregate(cmd, args)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "json":
				return printInfos(cmd.OutOrStdout(), infos)
			case "text":
				for _, label := range infos.Labels() {
					fmt.Fprintln(cmd.OutOrStdout(), label.String())
				}
				return nil
			default:
				return zerr.With(zerr.New("unknown format"), "format", format)
			}
		},
	}
	cmd.Flags().StringP("manifest", "m", "", "Aggregate the files listed in a manifest, one path per line")
	cmd.Flags().String("format", "json", "Output format: json or text (one label per line)")
	return cmd
}

// aggregate resolves where the build info comes from. Explicit file arguments
// win, then the --manifest flag, then the settings manifest.
func (c *CLI) aggregate(cmd *cobra.Command, args []string) (domain.BuildInfoMap, error) {
	if len(args) > 0 {
		return c.app.AggregateInfo(cmd.Context(), args)
	}

	manifest, _ := cmd.Flags().GetString("manifest")
	if manifest == "" {
		manifest = c.settings.Manifest
	}
	if manifest == "" {
		return nil, domain.ErrNoBuildInfo
	}
	return c.app.AggregateManifest(cmd.Context(), manifest)
}

// printInfos writes the aggregated records as one JSON object keyed by label.
// Labels marshal as text, so the encoder orders the keys itself.
func printInfos(w io.Writer, infos domain.BuildInfoMap) error {
	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode build info")
	}
	fmt.Fprintln(w, string(data))
	return nil
}
