package command

import (
	"fmt"
	"runtime"

	"github.com/frantjc/repatch"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SetCommon adds the flags and behavior that every
// repatch command shares to cmd.
func SetCommon(cmd *cobra.Command, version string) *cobra.Command {
	var verbosity int
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "V", fmt.Sprintf("Verbosity for %s.", cmd.Name()))
	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		cmd.SetContext(
			repatch.WithLogger(
				cmd.Context(), repatch.NewLogger(cmd.ErrOrStderr(), verbosity),
			),
		)
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	cmd.Version = version
	cmd.SetVersionTemplate("{{ .Name }}{{ .Version }} " + runtime.Version() + "\n")

	return cmd
}

func encodeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
