/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/geostore/datastore"
	"github.com/suparena/geostore/datastore/mock"
	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/storagemodels"
)

var _ datastore.Store = (*mock.Store)(nil)

func TestMockStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		s := mock.New("memory")

		ok, err := s.Save(ctx, "coordinates", storagemodels.Payload{"geo_id": 7, "lat": 45.5, "lng": -73.6})
		require.NoError(t, err)
		assert.True(t, ok)

		records, err := s.Get(ctx, "coordinates", 7)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, int64(7), records[0].ID())
		lat, _ := records[0].Float("lat")
		assert.Equal(t, 45.5, lat)

		_, err = s.Save(ctx, "coordinates", storagemodels.Payload{"geo_id": 7, "lat": 1, "lng": 2})
		assert.True(t, errors.IsAlreadyExists(err))

		ok, err = s.Update(ctx, "coordinates", 7, storagemodels.Payload{"lat": 1.0, "lng": 2.0})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.Delete(ctx, "coordinates", 7)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = s.Delete(ctx, "coordinates", 7)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 0, s.Count("coordinates"))
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		s := mock.New("memory")
		ok, err := s.Save(ctx, "polygon", storagemodels.Payload{"geo_id": 1})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 0, s.Count("polygon"))
		assert.Len(t, s.Calls(), 1)
	})

	t.Run("AllIDs", func(t *testing.T) {
		s := mock.New("memory")
		for _, id := range []int{3, 1, 2} {
			_, err := s.Save(ctx, "coordinates", storagemodels.Payload{"geo_id": id, "lat": 0.0, "lng": 0.0})
			require.NoError(t, err)
		}
		records, err := s.Get(ctx, "coordinates", storagemodels.AllIDs)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, int64(1), records[0].ID())
		assert.Equal(t, int64(3), records[2].ID())
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		boom := errors.New("backend down")
		s := mock.New("memory").WithSaveError(boom).WithDeleteError(boom)

		_, err := s.Save(ctx, "coordinates", storagemodels.Payload{"geo_id": 1})
		assert.ErrorIs(t, err, boom)
		_, err = s.Delete(ctx, "coordinates", 1)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Clear", func(t *testing.T) {
		s := mock.New("memory", "coordinates", "polygon")
		assert.Equal(t, []string{"coordinates", "polygon"}, s.Supports())
		_, _ = s.Save(ctx, "polygon", storagemodels.Payload{"geo_id": 1})
		s.Clear()
		assert.Empty(t, s.Calls())
		assert.Equal(t, 0, s.Count("polygon"))
	})
}
