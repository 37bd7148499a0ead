package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/flyconf/internal/render"
	"github.com/MKhiriev/flyconf/internal/resolver"
)

// newKeysCommand constructs the `keys` command, which shows how environment
// variables and overrides map onto canonical keys.
func newKeysCommand(environ []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the canonical keys set by the environment and overrides",
		Long: `keys lists every canonical configuration key set by the environment or
--set, the value it resolves to and the raw key that won it. Collisions
between old FLYWAY_ and new flyway_ names are reported as warnings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, err := setup(cmd, environ)
			if err != nil {
				return err
			}

			overrides, err := overridesFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			resolutions := resolver.Keys(environ, overrides, log)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.KeyTable(resolutions))
			return err
		},
	}

	registerOverrideFlag(cmd.Flags())

	return cmd
}
