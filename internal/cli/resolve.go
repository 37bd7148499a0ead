package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/flyconf/internal/config"
	"github.com/MKhiriev/flyconf/internal/render"
	"github.com/MKhiriev/flyconf/internal/resolver"
)

// newResolveCommand constructs the `resolve` command, which prints the
// merged configuration model.
func newResolveCommand(environ []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the configuration merged from files, environment and overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, log, err := setup(cmd, environ)
			if err != nil {
				return err
			}

			overrides, err := overridesFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			log.Debug().
				Strs("files", settings.ConfigFiles).
				Str("working_directory", settings.WorkingDirectory).
				Int("overrides", len(overrides)).
				Msg("resolving configuration")

			cfg, err := resolver.New(log).
				WithFiles(settings.ConfigFiles, settings.WorkingDirectory).
				WithEnvironment(environ).
				WithCommandLine(overrides).
				Build()
			if err != nil {
				return err
			}

			return render.Encode(cmd.OutOrStdout(), cfg, settings.Output)
		},
	}

	config.RegisterResolveFlags(cmd.Flags())
	registerOverrideFlag(cmd.Flags())

	return cmd
}
