/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
)

// AllIDs selects every record of a geometry type in Store.Get and Store.Delete.
const AllIDs int64 = -1

// Well-known payload and record keys.
const (
	KeyGeoID = "geo_id"
	KeyID    = "id"
	KeyLat   = "lat"
	KeyLng   = "lng"
)

// Payload is the loosely typed data handed to a store on Save and Update.
// Its keys depend on the geometry type; coordinates use lat, lng and geo_id.
type Payload map[string]any

// Float returns the value under key as a float64.
func (p Payload) Float(key string) (float64, bool) {
	return floatValue(p[key])
}

// Int returns the value under key as an int64.
func (p Payload) Int(key string) (int64, bool) {
	return intValue(p[key])
}

// Has reports whether every key is present with a non-nil value.
func (p Payload) Has(keys ...string) bool {
	for _, k := range keys {
		if v, ok := p[k]; !ok || v == nil {
			return false
		}
	}
	return true
}

// Record is one stored geometry row as returned by Store.Get.
type Record map[string]any

// ID returns the record id, or 0 when absent.
func (r Record) ID() int64 {
	id, _ := intValue(r[KeyID])
	return id
}

// Float returns the value under key as a float64.
func (r Record) Float(key string) (float64, bool) {
	return floatValue(r[key])
}

// Descriptor is the bookkeeping row written next to every persisted geometry:
// which type it is, which store holds it and the linked content status.
type Descriptor struct {
	GeoID        int64           `json:"geo_id"`
	GeoType      string          `json:"geo_type"`
	Store        string          `json:"store"`
	Status       string          `json:"status"`
	DateCreated  strfmt.DateTime `json:"date_created"`
	DateModified strfmt.DateTime `json:"date_modified"`
}

// Relationship links a geometry to another object of the content host.
type Relationship struct {
	GeoID      int64  `json:"geo_id"`
	ObjectID   int64  `json:"object_id"`
	ObjectType string `json:"object_type"`
}

// QueryParams defines parameters for a DynamoDB Query operation.
type QueryParams struct {
	// TableName is the DynamoDB table name.
	TableName string
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// FilterExpression is an optional filter expression.
	FilterExpression *string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// Limit defines an optional limit per query page.
	Limit *int32
	// ExclusiveStartKey for pagination
	ExclusiveStartKey map[string]types.AttributeValue
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	case interface{ Int64() (int64, error) }:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}
