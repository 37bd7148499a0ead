// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli contains the Cobra commands of the flyconf binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/flyconf/internal/config"
	"github.com/MKhiriev/flyconf/internal/logger"
	"github.com/MKhiriev/flyconf/models"
)

const appName = "flyconf"

// NewRootCommand constructs the flyconf root command and its subcommands.
//
// environ is the environment snapshot, as returned by os.Environ, that both
// the tool settings and the migration configuration are read from. It is
// captured once by the caller so a run sees a single consistent view.
func NewRootCommand(info models.AppBuildInfo, environ []string) *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Resolve migration configuration from files, environment and flags",
		Long: `flyconf merges migration configuration from configuration files,
FLYWAY_/flyway_/environments_ environment variables and command-line
overrides, in that order of precedence, and prints the result.`,
		Version:      info.String(),
		SilenceUsage: true,
	}
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	config.RegisterGlobalFlags(root.PersistentFlags())

	root.AddCommand(
		newResolveCommand(environ),
		newKeysCommand(environ),
	)

	return root
}

// setup loads the tool settings from environ and the parsed flags of cmd and
// builds the logger every command writes its diagnostics through.
func setup(cmd *cobra.Command, environ []string) (*config.Settings, *logger.Logger, error) {
	settings, err := config.Load(environ, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cmd.ErrOrStderr(), appName, settings.Log.Level, settings.Log.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating logger: %w", err)
	}

	log.Debug().Any("settings", settings).Msg("loaded settings")
	return settings, log, nil
}
