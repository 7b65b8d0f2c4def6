package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codebundle/pkg/rsp"
)

func newCreateRspCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create-rsp",
		Short: "Create an RSP file with the bundle command",
		Long: `Ask for bundle options and save them as a response file.
Run it later with "codebundle @response.txt".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			in := cmd.InOrStdin()

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}

			engine, err := a.engine(cwd)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				return nil
			}

			answers, err := rsp.NewPrompter(in, out, a.logger).Build(engine.Catalog(), cwd)
			if err != nil {
				a.logger.Debug("Prompt aborted", zap.Error(err))
				fmt.Fprintf(out, "Error: %v\n", err)
				return nil
			}

			if err := rsp.Write(answers); err != nil {
				a.logger.Error("Failed to write response file", zap.String("file", answers.Path), zap.Error(err))
				fmt.Fprintf(out, "Error: %v\n", err)
				return nil
			}

			fmt.Fprintf(out, "RSP file created at %s\n", answers.Path)
			return nil
		},
	}
}
