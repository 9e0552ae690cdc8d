package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newShowCmd creates the show command: a styled, human-readable dump of
// every region in the file, in inheritance order.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print regions with their exports and inheritance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			c, err := readCollection(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded collection", "file", args[0], "regions", c.Len())

			if c.IsEmpty() {
				printDetail("no regions declared")
				return nil
			}

			for r := range c.All() {
				header := styleTitle.Render(r.Name())
				if p := r.Parent(); p != nil {
					header += " " + styleDim.Render("inherits from "+p.Name())
				}
				fmt.Println(header)

				exports := r.Exports()
				for _, api := range exports {
					fmt.Println("  " + styleValue.Render(api))
				}

				effective := 0
				for range r.All() {
					effective++
				}
				printDetail("%d exported, %d effective", len(exports), effective)
				fmt.Println()
			}
			return nil
		},
	}
}
