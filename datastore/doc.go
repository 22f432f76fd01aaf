/*
Package datastore defines the storage adapter contract of GeoStore.

A Store persists geometry data for the geometry types it Supports:

	type Store interface {
	    Type() string
	    Label() string
	    Version() string
	    Supports() []string
	    Save(ctx context.Context, geometryType string, data storagemodels.Payload) (bool, error)
	    Get(ctx context.Context, geometryType string, ids ...int64) ([]storagemodels.Record, error)
	    Update(ctx context.Context, geometryType string, id int64, data storagemodels.Payload) (bool, error)
	    Delete(ctx context.Context, geometryType string, ids ...int64) (bool, error)
	}

Stores are registered in a Factory under a type key and instantiated on
demand, from a type key, an existing store, or a geometry's store type.

Implementations:
  - sqlstore: reference adapter on SQLite, also holding descriptors and relationships
  - ddb: DynamoDB adapter
  - mock: in-memory recording store for testing
*/
package datastore
