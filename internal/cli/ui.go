package cli

import (
	"github.com/spf13/cobra"

	"devcheck/internal/ui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringP("config", "c", "", "path to tools catalog file")
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive results dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := cmd.Flags().GetString("config")
		return ui.Start(cfg)
	},
}
