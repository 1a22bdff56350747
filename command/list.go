package command

import (
	"fmt"

	"github.com/frantjc/repatch"
	"github.com/frantjc/repatch/internal/patchregexp"
	"github.com/frantjc/repatch/patches"
	xslice "github.com/frantjc/x/slice"
	"github.com/spf13/cobra"
)

func newList() *cobra.Command {
	var (
		pkg string
		cmd = &cobra.Command{
			Use:   "list",
			Short: "List patches",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				all := patches.All()

				if pkg != "" {
					if !patchregexp.IsPackageName(pkg) {
						return fmt.Errorf("invalid package name %s", pkg)
					}

					all = xslice.Filter(all, func(patch *repatch.Patch, _ int) bool {
						return len(patch.CompatiblePackages) == 0 || xslice.Some(patch.CompatiblePackages, func(c repatch.CompatiblePackage, _ int) bool {
							return c.Name == pkg
						})
					})
				}

				return encodeYAML(cmd, all)
			},
		}
	)

	cmd.Flags().StringVarP(&pkg, "package", "P", "", "only list patches compatible with the given package")

	return cmd
}

// newOptions prints an options file holding the default value of every
// option of every patch, suitable for editing and passing to apply.
func newOptions() *cobra.Command {
	var (
		cmd = &cobra.Command{
			Use:   "options",
			Short: "Print default patch options",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				options := map[string]repatch.Values{}

				for _, patch := range patches.All() {
					if len(patch.Options) > 0 {
						options[patch.Name] = patch.Defaults()
					}
				}

				return encodeYAML(cmd, options)
			},
		}
	)

	return cmd
}
