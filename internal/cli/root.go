package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devcheck",
	Short: "devcheck – development environment diagnostics",
	Long:  "devcheck inspects the machine for the build tools a project needs and reports what is missing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: run the checks with text output
		return runCheck(args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errMissingRequired) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
