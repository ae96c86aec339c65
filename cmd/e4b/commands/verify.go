package commands

import (
	"fmt"
	"strconv"

	"github.com/elharo/eclipse/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [files...]",
		Short: "Check that the jars referenced by build info exist on disk",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := c.aggregate(cmd, args)
			if err != nil {
				return err
			}

			root, _ := cmd.Flags().GetString("root")
			if root == "" {
				root = c.settings.ArtifactRoot
			}

			report, err := c.app.VerifyArtifacts(cmd.Context(), infos, root)
			if err != nil {
				return err
			}
			if report.Complete() {
				fmt.Fprintf(cmd.OutOrStdout(), "all %d artifacts present\n", report.Checked)
				return nil
			}
			for _, path := range report.Missing {
				fmt.Fprintln(cmd.OutOrStdout(), "missing: "+path)
			}
			return zerr.With(domain.ErrArtifactsMissing, "missing", strconv.Itoa(len(report.Missing)))
		},
	}
	cmd.Flags().StringP("manifest", "m", "", "Aggregate the files listed in a manifest, one path per line")
	cmd.Flags().String("root", "", "Directory jar paths are resolved against (default from settings)")
	return cmd
}
