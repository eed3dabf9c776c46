package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the JSX and documentation sources of the project",
		Long: `List the .jsx files build --jsx would transpile, with their output paths,
and the sources docs would render. No tool is run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := buildConfig()
			if err != nil {
				return err
			}

			discovery, err := dispatcher.Discover(cmd.Context(), cfg, optionsFromConfig())
			if err != nil {
				return err
			}

			return ui.DisplaySources(cmd.Context(), discovery.JSX, discovery.Docs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
