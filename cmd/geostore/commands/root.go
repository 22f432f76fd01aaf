/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"github.com/spf13/cobra"

	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/logger"
	"github.com/suparena/geostore/settings"
)

// NewRootCmd builds the geostore command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "geostore",
		Short: "GeoStore - geometry storage administration",
		Long: `GeoStore keeps geographic data for content records in pluggable stores.

Available commands:
  types     - List registered geometry, map, store and field types
  supports  - Show which stores persist which geometries
  coords    - Save, read, update and delete coordinates
  migrate   - Apply the local database migrations
  config    - Print the effective configuration
  version   - Show version information

Examples:
  geostore types --json
  geostore coords save 42 45.5 -73.6
  geostore supports stores`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.Load(settings.LoadOptions{File: a.configFile, EnvFile: a.envFile})
			if err != nil {
				return err
			}
			if a.dbPath != "" {
				cfg.Set(settings.KeyDatabasePath, a.dbPath)
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Set(settings.KeyLogLevel, a.logLevel)
			}
			if cmd.Flags().Changed("json-logs") {
				cfg.Set(settings.KeyLogJSON, a.jsonLogs)
			}
			if err := logger.Initialize(cfg.LogJSON(), cfg.LogLevel()); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			a.cfg = cfg
			a.logger = logger.Logger
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML configuration file")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.StringVar(&a.dbPath, "db", "", "local database path (overrides database.path)")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.BoolVar(&a.jsonLogs, "json-logs", false, "write logs as JSON")

	root.AddCommand(
		newTypesCmd(a),
		newSupportsCmd(a),
		newCoordsCmd(a),
		newMigrateCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}
