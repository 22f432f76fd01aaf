/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlstore

import (
	"context"

	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/storagemodels"
)

// Relationships lists the objects linked to geoID ordered by type and id.
func (s *Store) Relationships(ctx context.Context, geoID int64) ([]storagemodels.Relationship, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT geo_id, object_id, object_type FROM geo_relationships WHERE geo_id = ? ORDER BY object_type, object_id",
		geoID)
	if err != nil {
		return nil, errors.Wrapf(err, "query relationships of %d", geoID)
	}
	defer rows.Close()

	var out []storagemodels.Relationship
	for rows.Next() {
		var r storagemodels.Relationship
		if err := rows.Scan(&r.GeoID, &r.ObjectID, &r.ObjectType); err != nil {
			return nil, errors.Wrap(err, "scan relationship")
		}
		out = append(out, r)
	}
	return out, errors.Wrap(rows.Err(), "iterate relationships")
}

// Relate links geoID to an object. Linking twice is a no-op.
func (s *Store) Relate(ctx context.Context, r storagemodels.Relationship) (bool, error) {
	if r.GeoID <= 0 || r.ObjectID <= 0 || r.ObjectType == "" {
		return false, errors.NewValidationError("relationship", "geo_id, object_id and object_type are required")
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO geo_relationships (geo_id, object_id, object_type) VALUES (?, ?, ?)",
		r.GeoID, r.ObjectID, r.ObjectType)
	if err != nil {
		return false, errors.Wrapf(err, "relate %d", r.GeoID)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Unrelate removes a link.
func (s *Store) Unrelate(ctx context.Context, r storagemodels.Relationship) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM geo_relationships WHERE geo_id = ? AND object_id = ? AND object_type = ?",
		r.GeoID, r.ObjectID, r.ObjectType)
	if err != nil {
		return false, errors.Wrapf(err, "unrelate %d", r.GeoID)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
