package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the report of the last run",
		Long:  "View the steps, durations and JSX compile results recorded by the last run.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := expandHome(viper.GetString(reportPathKey))
			if err != nil {
				return err
			}

			report, err := reportStore.LoadReport(m.Path(path))
			if err != nil {
				return fmt.Errorf("load run report: %w", err)
			}

			return ui.DisplayReport(cmd.Context(), report)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
