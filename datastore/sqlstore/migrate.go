/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every pending migration. Migrations run in file name order,
// each in its own transaction, and are recorded in schema_migrations.
func Migrate(ctx context.Context, db *sql.DB, l *zap.SugaredLogger) (int, error) {
	l = logger.Or(l)

	entries, err := migrations.ReadDir("migrations")
	if err != nil {
		return 0, errors.Wrap(err, "read migrations")
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	applied := 0
	for _, filename := range files {
		version := strings.Split(filename, "_")[0]

		var exists bool
		err := db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = ?)", version).Scan(&exists)
		if err != nil {
			// Only 000 may run before schema_migrations exists
			if version != "000" {
				return applied, errors.Newf("schema_migrations table missing, but migration is not 000: %s", filename)
			}
		} else if exists {
			l.Debugw("Skipping migration (already applied)", "migration", filename, "version", version)
			continue
		}

		body, err := migrations.ReadFile(path.Join("migrations", filename))
		if err != nil {
			return applied, errors.Wrapf(err, "read %s", filename)
		}

		l.Infow("Applying migration", "migration", filename, "version", version)

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return applied, errors.Wrapf(err, "begin tx for %s", filename)
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			_ = tx.Rollback()
			return applied, errors.Wrapf(err, "execute %s", filename)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			_ = tx.Rollback()
			return applied, errors.Wrapf(err, "record %s", filename)
		}
		if err := tx.Commit(); err != nil {
			return applied, errors.Wrapf(err, "commit %s", filename)
		}
		applied++
	}

	l.Infow("Migrations complete", "total_migrations", len(files), "applied", applied)
	return applied, nil
}
