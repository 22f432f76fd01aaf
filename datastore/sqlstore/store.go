/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/logger"
	"github.com/suparena/geostore/storagemodels"
)

const (
	// StoreType is the registry key of the SQLite store.
	StoreType = "local"
	// Label is the human readable store name.
	Label = "Local database"
	// Version is the adapter version.
	Version = "1.0.0"

	// CoordinatePrecision is the number of fractional digits kept for lat and lng.
	CoordinatePrecision = 6
)

var supported = []string{"coordinates"}

// Store persists geometries, descriptors and relationships in SQLite.
type Store struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// Open opens the SQLite database at path and applies the bundled migrations.
// ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string, l *zap.SugaredLogger) (*Store, error) {
	db, err := OpenDB(ctx, path)
	if err != nil {
		return nil, err
	}
	if _, err := Migrate(ctx, db, l); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "migrate sqlite db")
	}
	return New(db, l), nil
}

// OpenDB opens and pings the SQLite database at path without migrating it.
func OpenDB(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.NewValidationError("path", "storage path is required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	// One connection keeps ":memory:" databases and WAL writers consistent.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	return db, nil
}

// New wraps an already migrated database handle.
func New(db *sql.DB, l *zap.SugaredLogger) *Store {
	return &Store{db: db, logger: logger.Or(l)}
}

// DB returns the underlying database handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Type() string       { return StoreType }
func (s *Store) Label() string      { return Label }
func (s *Store) Version() string    { return Version }
func (s *Store) Supports() []string { return slices.Clone(supported) }

// Save inserts a coordinates row. The payload must carry lat, lng and a
// positive geo_id; an existing row for the id yields ErrAlreadyExists.
// Lat and lng are stored as given: geodetic range checks belong to the
// caller, e.g. the CLI.
func (s *Store) Save(ctx context.Context, geometryType string, data storagemodels.Payload) (bool, error) {
	if !s.supports(geometryType) {
		return false, nil
	}
	id, lat, lng, ok := coordinates(data)
	if !ok {
		s.logger.Debugw("Coordinates payload incomplete", "operation", "save", "payload_keys", len(data))
		return false, nil
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO geo_coordinates (geo_id, lat, lng) VALUES (?, ?, ?)",
		id, lat, lng)
	if err != nil {
		if isConstraintError(err) {
			return false, errors.NewAlreadyExistsError(geometryType, strconv.FormatInt(id, 10))
		}
		return false, errors.Wrapf(err, "insert %s %d", geometryType, id)
	}
	s.logger.Debugw("Saved geometry", "geo_type", geometryType, "geo_id", id)
	return true, nil
}

// Get returns the rows for ids ordered by id. storagemodels.AllIDs returns
// every row; ids without a row are skipped.
func (s *Store) Get(ctx context.Context, geometryType string, ids ...int64) ([]storagemodels.Record, error) {
	if !s.supports(geometryType) || len(ids) == 0 {
		return nil, nil
	}

	query := "SELECT geo_id, lat, lng FROM geo_coordinates"
	var args []any
	if !slices.Contains(ids, storagemodels.AllIDs) {
		query += " WHERE geo_id IN (" + placeholders(len(ids)) + ")"
		args = idArgs(ids)
	}
	query += " ORDER BY geo_id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "query %s", geometryType)
	}
	defer rows.Close()

	var out []storagemodels.Record
	for rows.Next() {
		var (
			id       int64
			lat, lng decimal.Decimal
		)
		if err := rows.Scan(&id, &lat, &lng); err != nil {
			return nil, errors.Wrapf(err, "scan %s", geometryType)
		}
		out = append(out, storagemodels.Record{
			storagemodels.KeyID:  id,
			storagemodels.KeyLat: lat.InexactFloat64(),
			storagemodels.KeyLng: lng.InexactFloat64(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "iterate %s", geometryType)
	}
	return out, nil
}

// Update replaces the coordinates of id, inserting the row when missing.
// Both lat and lng are required; like Save, their ranges are not checked.
func (s *Store) Update(ctx context.Context, geometryType string, id int64, data storagemodels.Payload) (bool, error) {
	if !s.supports(geometryType) || id <= 0 {
		return false, nil
	}
	lat, latOK := data.Float(storagemodels.KeyLat)
	lng, lngOK := data.Float(storagemodels.KeyLng)
	if !latOK || !lngOK {
		s.logger.Debugw("Coordinates payload incomplete", "operation", "update", "geo_id", id)
		return false, nil
	}

	_, err := s.db.ExecContext(ctx,
		"REPLACE INTO geo_coordinates (geo_id, lat, lng) VALUES (?, ?, ?)",
		id, round(lat), round(lng))
	if err != nil {
		return false, errors.Wrapf(err, "replace %s %d", geometryType, id)
	}
	return true, nil
}

// Delete removes the rows for ids and reports whether any row was removed.
func (s *Store) Delete(ctx context.Context, geometryType string, ids ...int64) (bool, error) {
	if !s.supports(geometryType) || len(ids) == 0 {
		return false, nil
	}

	query := "DELETE FROM geo_coordinates"
	var args []any
	if !slices.Contains(ids, storagemodels.AllIDs) {
		query += " WHERE geo_id IN (" + placeholders(len(ids)) + ")"
		args = idArgs(ids)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrapf(err, "delete %s", geometryType)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrapf(err, "delete %s", geometryType)
	}
	return n > 0, nil
}

func (s *Store) supports(geometryType string) bool {
	return slices.Contains(supported, geometryType)
}

func coordinates(data storagemodels.Payload) (int64, decimal.Decimal, decimal.Decimal, bool) {
	id, idOK := data.Int(storagemodels.KeyGeoID)
	lat, latOK := data.Float(storagemodels.KeyLat)
	lng, lngOK := data.Float(storagemodels.KeyLng)
	if !idOK || !latOK || !lngOK || id <= 0 {
		return 0, decimal.Zero, decimal.Zero, false
	}
	return id, round(lat), round(lng), true
}

func round(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(CoordinatePrecision)
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func idArgs(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func isConstraintError(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}
