package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codebundle/pkg/bundle"
	"codebundle/pkg/config"
	"codebundle/pkg/logging"
	"codebundle/pkg/version"
)

const appName = "codebundle"

// app carries state shared by the subcommands of one invocation.
type app struct {
	debug      bool
	configPath string
	logger     *zap.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "codebundle concatenates source files into a single bundle",
		Long: `codebundle walks a directory, selects files by language, and writes their contents
into one output file. Build, dependency and VCS folders are skipped.

Arguments of the form @file are replaced by the contents of a response file,
as written by "codebundle create-rsp".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Setup(a.debug, appName, version.Version); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logging.Logger
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a TOML config file (default: <dir>/"+config.FileName+", or $"+config.EnvVar+")")

	rootCmd.AddCommand(
		newBundleCmd(a),
		newCreateRspCmd(a),
		newLanguagesCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command with the given arguments.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

// engine loads the configuration for root and returns an engine built from it.
func (a *app) engine(root string) (*bundle.Engine, error) {
	path, explicit := config.Resolve(a.configPath, root)
	cfg, err := config.Load(path, explicit, a.logger)
	if err != nil {
		return nil, err
	}
	catalog, rules := cfg.Build()
	return bundle.NewEngine(catalog, rules, a.logger), nil
}
