package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"codebundle/pkg/config"
)

func newLanguagesCmd(a *app) *cobra.Command {
	var root string

	languagesCmd := &cobra.Command{
		Use:   "languages",
		Short: "List the languages accepted by --language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine(root)
			if err != nil {
				return err
			}
			catalog := engine.Catalog()
			for _, name := range catalog.Names() {
				exts, _ := catalog.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, strings.Join(exts, " "))
			}
			return nil
		},
	}

	languagesCmd.Flags().StringVarP(&root, "dir", "d", ".", "Directory whose "+config.FileName+" is read")
	return languagesCmd
}
