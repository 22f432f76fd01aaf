/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/registry"
	"github.com/suparena/geostore/storagemodels"
)

// Query runs params and follows LastEvaluatedKey until every page is read.
func (d *Store) Query(ctx context.Context, params *storagemodels.QueryParams) ([]map[string]types.AttributeValue, error) {
	input := &sdk.QueryInput{
		TableName:                 &params.TableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ExclusiveStartKey:         params.ExclusiveStartKey,
	}

	var items []map[string]types.AttributeValue
	for page := 1; ; page++ {
		out, err := d.client.Query(ctx, input)
		if err != nil {
			return nil, errors.Wrapf(err, "query error on page %d", page)
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// queryType lists every item of a geometry type through the type index.
func (d *Store) queryType(ctx context.Context, geometryType string) ([]map[string]types.AttributeValue, error) {
	indexMap, ok := registry.GetIndexMap(geometryType)
	if !ok {
		return nil, errors.Wrapf(errors.ErrNoIndexMap, "geometry type %q", geometryType)
	}
	av, err := attributevalue.MarshalMap(coordinatesItem{EntityType: geometryType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal key")
	}
	pk := expandMacros(indexMap, av)[d.gsi.PartitionKeyName]
	if pk == "" {
		return nil, errors.Newf("%s not found in index map", d.gsi.PartitionKeyName)
	}

	return d.Query(ctx, &storagemodels.QueryParams{
		TableName:              d.tableName,
		IndexName:              &d.gsi.IndexName,
		KeyConditionExpression: d.gsi.PartitionKeyName + " = :pk",
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
		},
	})
}
