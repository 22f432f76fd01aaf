/*
Package storagemodels defines the data structures shared by every GeoStore
backend.

Key Types:

Payload and Record:
Geometry data crosses the store contract as loosely typed maps, because each
geometry type carries its own fields:

	store.Save(ctx, "coordinates", storagemodels.Payload{
	    "geo_id": 7,
	    "lat":    45.5,
	    "lng":    -73.6,
	})
	records, _ := store.Get(ctx, "coordinates", 7)
	lat, _ := records[0].Float("lat")

AllIDs selects every record of a type.

Descriptor and Relationship:
Rows of the geo_data and geo_relationships tables kept next to the geometry
data itself.

QueryParams:
Parameters for querying the DynamoDB backend.
*/
package storagemodels
