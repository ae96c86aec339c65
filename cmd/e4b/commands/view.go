package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/elharo/eclipse/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [path]",
		Short: "Parse a project view file and print its contents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromURL, _ := cmd.Flags().GetBool("url")
			if fromURL && len(args) == 0 {
				return zerr.New("a URL argument is required with --url")
			}

			source := c.settings.View
			if len(args) == 1 {
				source = args[0]
			}

			var (
				view *domain.ProjectView
				err  error
			)
			if fromURL {
				view, err = c.app.LoadViewURL(cmd.Context(), source)
			} else {
				view, err = c.app.LoadView(cmd.Context(), source)
			}
			if err != nil {
				return err
			}

			if fingerprint, _ := cmd.Flags().GetBool("fingerprint"); fingerprint {
				fmt.Fprintln(cmd.OutOrStdout(), view.Fingerprint())
				return nil
			}

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "text":
				printView(cmd.OutOrStdout(), view)
				return nil
			case "json":
				data, err := json.MarshalIndent(view, "", "  ")
				if err != nil {
					return zerr.Wrap(err, "failed to encode view")
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			default:
				return zerr.With(zerr.New("unknown format"), "format", format)
			}
		},
	}
	cmd.Flags().Bool("url", false, "Treat the argument as an http(s) URL")
	cmd.Flags().String("format", "text", "Output format: text or json")
	cmd.Flags().Bool("fingerprint", false, "Print only the view fingerprint")
	return cmd
}

// printView renders the resolved view in the section layout of the source
// format, with imports already flattened.
func printView(w io.Writer, view *domain.ProjectView) {
	printSection(w, "directories", view.Directories())
	printSection(w, "targets", view.Targets())
	printSection(w, "build_flags", view.BuildFlags())
	if level := view.JavaLanguageLevel(); level > 0 {
		fmt.Fprintln(w, "java_language_level: "+strconv.Itoa(level))
	}
}

func printSection(w io.Writer, name string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w, name+":")
	for _, item := range items {
		fmt.Fprintln(w, "  "+item)
	}
}
