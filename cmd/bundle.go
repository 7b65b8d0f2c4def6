package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codebundle/pkg/bundle"
)

func newBundleCmd(a *app) *cobra.Command {
	var req bundle.Request

	bundleCmd := &cobra.Command{
		Use:   "bundle",
		Short: "Bundle code files from a directory to a single file",
		Long: `Bundle selects files under --dir by language and concatenates them into --output.
Languages are comma separated names from "codebundle languages", or "all".`,
		Example: `  codebundle bundle -o bundle.txt -l python,sql --note
  codebundle bundle -o all.txt -l all --sort --remove-empty-lines --author "Ada"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			engine, err := a.engine(req.Root)
			if err != nil {
				fmt.Fprintf(out, "An error occurred: %v\n", err)
				return nil
			}

			// Failures are reported but never change the exit status.
			res, err := engine.Run(cmd.Context(), req)
			if err != nil {
				a.logger.Debug("Bundle failed", zap.Error(err))
				fmt.Fprintf(out, "An error occurred: %v\n", err)
				return nil
			}
			fmt.Fprintln(out, res.Message)
			return nil
		},
	}

	flags := bundleCmd.Flags()
	flags.StringVarP(&req.Output, "output", "o", "", "The output file path and name")
	flags.StringVarP(&req.Selector, "language", "l", "", "The programming language(s) to select files from, or 'all'")
	flags.BoolVarP(&req.AddSourceComment, "note", "n", false, "Add the source file path as a comment in the bundle file")
	flags.BoolVarP(&req.SortByExtension, "sort", "s", false, "Sort files by extension instead of file name")
	flags.BoolVarP(&req.StripEmptyLines, "remove-empty-lines", "r", false, "Remove empty lines from the source code before adding it to the bundle")
	flags.StringVarP(&req.Author, "author", "a", "", "Name of the author to add as a comment in the bundle file")
	flags.StringVarP(&req.Root, "dir", "d", ".", "Directory to scan")
	_ = bundleCmd.MarkFlagRequired("output")
	_ = bundleCmd.MarkFlagRequired("language")

	return bundleCmd
}
