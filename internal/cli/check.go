package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCheckCmd creates the check command: a containment query against a
// region's effective membership. Exits non-zero when the package is not
// visible from the region.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file> <region> <package>",
		Short: "Check whether a region exports or inherits a package",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, name, pkg := args[0], args[1], args[2]

			c, err := readCollection(file)
			if err != nil {
				return err
			}

			r, ok := c.ByName(name)
			if !ok {
				return fmt.Errorf("no region %q in %s", name, file)
			}

			if !r.Contains(pkg) {
				printError("%s is not visible from region %q", pkg, name)
				return fmt.Errorf("%s: not contained", pkg)
			}

			// Name the nearest region that actually declares it.
			declaredBy := name
		chain:
			for reg := r; reg != nil; reg = reg.Parent() {
				for _, api := range reg.Exports() {
					if api == pkg {
						declaredBy = reg.Name()
						break chain
					}
				}
			}
			if declaredBy == name {
				printSuccess("%s is exported by region %q", pkg, name)
			} else {
				printSuccess("%s is visible from region %q (inherited from %q)", pkg, name, declaredBy)
			}
			return nil
		},
	}
}
