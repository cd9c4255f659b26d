package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"devcheck/internal/config"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the tools catalog",
	Long:  "Writes the catalog's JSON Schema to stdout, for validating tools.json in editors and CI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := config.MarshalSchema(config.Schema())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
