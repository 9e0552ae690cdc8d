package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/apiregions/regions/pkg/regionjson"
)

// newFmtCmd creates the fmt command: parse the input and re-serialize it in
// canonical form (insertion order, sorted exports, invalid entries dropped).
func newFmtCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite a regions file in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := readCollection(args[0])
			if err != nil {
				return err
			}

			if output == "" {
				return regionjson.Write(c, os.Stdout)
			}
			if err := regionjson.WriteFile(c, output); err != nil {
				return err
			}
			printSuccess("wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
