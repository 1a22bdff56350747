package command

import (
	"github.com/spf13/cobra"
)

// NewRepatch returns the root command for
// repatch which acts as its CLI entrypoint.
func NewRepatch() *cobra.Command {
	var (
		cmd = &cobra.Command{
			Use:   "repatch",
			Short: "Apply patches to Android apps decoded by apktool",
		}
	)

	cmd.AddCommand(newList(), newOptions(), newApply())

	return cmd
}
