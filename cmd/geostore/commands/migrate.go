/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suparena/geostore/datastore/sqlstore"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending local database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.DatabasePath()
			db, err := sqlstore.OpenDB(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := sqlstore.Migrate(cmd.Context(), db, a.logger)
			if err != nil {
				return err
			}
			if applied == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Database %s is up to date\n", path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s) to %s\n", applied, path)
			return nil
		},
	}
}
