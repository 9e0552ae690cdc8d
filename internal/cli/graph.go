package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apiregions/regions/pkg/render"
)

// newGraphCmd creates the graph command: the inheritance chain as Graphviz
// DOT on stdout, or rendered SVG when the output file ends in .svg.
func newGraphCmd() *cobra.Command {
	var (
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Render the inheritance chain as DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if !cmd.Flags().Changed("detailed") {
				path, err := configPath()
				if err != nil {
					return err
				}
				cfg, err := loadConfig(path)
				if err != nil {
					return err
				}
				detailed = cfg.Detailed
			}

			c, err := readCollection(args[0])
			if err != nil {
				return err
			}

			dot := render.ToDOT(c, render.Options{Detailed: detailed})

			switch {
			case output == "":
				fmt.Print(dot)
			case strings.HasSuffix(output, ".svg"):
				prog := newProgress(logger)
				svg, err := render.RenderSVG(dot)
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, svg, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				prog.done(fmt.Sprintf("Rendered %d regions", c.Len()))
				printSuccess("wrote %s", output)
			default:
				if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				printSuccess("wrote %s", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty, SVG when the name ends in .svg)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include export lists in node labels")
	return cmd
}
