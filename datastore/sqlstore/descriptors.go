/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlstore

import (
	"context"
	"database/sql"

	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/storagemodels"
)

const descriptorColumns = "geo_id, geo_type, store, status, date_created, date_modified"

// Descriptor returns the geo_data row of geoID, or nil when none exists.
func (s *Store) Descriptor(ctx context.Context, geoID int64) (*storagemodels.Descriptor, error) {
	var d storagemodels.Descriptor
	err := s.db.QueryRowContext(ctx,
		"SELECT "+descriptorColumns+" FROM geo_data WHERE geo_id = ?", geoID,
	).Scan(&d.GeoID, &d.GeoType, &d.Store, &d.Status, &d.DateCreated, &d.DateModified)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get descriptor %d", geoID)
	}
	return &d, nil
}

// PutDescriptor inserts a descriptor and keeps an existing one untouched.
func (s *Store) PutDescriptor(ctx context.Context, d storagemodels.Descriptor) (bool, error) {
	return s.writeDescriptor(ctx, "INSERT OR IGNORE", d)
}

// UpdateDescriptor inserts or replaces a descriptor.
func (s *Store) UpdateDescriptor(ctx context.Context, d storagemodels.Descriptor) (bool, error) {
	return s.writeDescriptor(ctx, "REPLACE", d)
}

// DeleteDescriptor removes the geo_data row of geoID.
func (s *Store) DeleteDescriptor(ctx context.Context, geoID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM geo_data WHERE geo_id = ?", geoID)
	if err != nil {
		return false, errors.Wrapf(err, "delete descriptor %d", geoID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrapf(err, "delete descriptor %d", geoID)
	}
	return n > 0, nil
}

func (s *Store) writeDescriptor(ctx context.Context, verb string, d storagemodels.Descriptor) (bool, error) {
	if d.GeoID <= 0 || d.GeoType == "" || d.Store == "" {
		return false, errors.NewValidationError("descriptor", "geo_id, geo_type and store are required")
	}
	res, err := s.db.ExecContext(ctx,
		verb+" INTO geo_data ("+descriptorColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		d.GeoID, d.GeoType, d.Store, d.Status, d.DateCreated, d.DateModified)
	if err != nil {
		return false, errors.Wrapf(err, "write descriptor %d", d.GeoID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrapf(err, "write descriptor %d", d.GeoID)
	}
	return n > 0, nil
}
