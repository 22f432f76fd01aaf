/*
Package ddb provides the "dynamodb" geometry store on AWS DynamoDB.

Items live in a single table. Their keys come from the index map registered
for the geometry type, with macros expanded from item attributes:

	registry.RegisterIndexMap("coordinates", map[string]string{
	    "PK":  "GEO#{ID}",             // Becomes "GEO#42"
	    "SK":  "COORDINATES",          // Static value
	    "PK1": "GEOTYPE#{EntityType}", // GSI1 partition, one per type
	    "SK1": "GEO#{ID}",
	})

EntityType is injected on every put. Save is conditional on the item not
existing, Update overwrites, Get with storagemodels.AllIDs reads every GSI1
page.
*/
package ddb
