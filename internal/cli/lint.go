package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apiregions/regions/pkg/region"
)

// newLintCmd creates the lint command. The model drops bad exports
// silently by design; lint re-runs the same rules at the wire level and
// reports every entry that would be dropped, plus region-name problems.
func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file>",
		Short: "Report declarations the model would silently drop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			wire, err := readWire(args[0])
			if err != nil {
				return err
			}

			problems := 0
			c := region.New()
			for _, w := range wire {
				r, err := c.Create(w.Name)
				if err != nil {
					printError("region %q: %v", w.Name, err)
					problems++
					continue
				}

				for _, api := range w.Exports {
					switch err := region.Validate(api); {
					case errors.Is(err, region.ErrReservedWord):
						printWarning("region %q: %q contains a reserved word", w.Name, api)
						problems++
					case err != nil:
						printWarning("region %q: %q is not a valid package identifier", w.Name, api)
						problems++
					case r.Contains(api):
						printWarning("region %q: %q is already exported higher in the chain", w.Name, api)
						problems++
					default:
						r.Add(api)
					}
				}
			}

			prog.done(fmt.Sprintf("Checked %d regions", len(wire)))
			if problems > 0 {
				return fmt.Errorf("%d problem(s) found", problems)
			}
			printSuccess("no problems found")
			return nil
		},
	}
}
