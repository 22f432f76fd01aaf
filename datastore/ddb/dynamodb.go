/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"slices"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/logger"
	"github.com/suparena/geostore/registry"
	"github.com/suparena/geostore/storagemodels"
)

const (
	// StoreType is the registry key of the DynamoDB store.
	StoreType = "dynamodb"
	// Label is the human readable store name.
	Label = "Amazon DynamoDB"
	// Version is the adapter version.
	Version = "1.0.0"
)

// CoordinatesIndexMap lays out coordinates items in the single table.
var CoordinatesIndexMap = map[string]string{
	"PK":  "GEO#{ID}",
	"SK":  "COORDINATES",
	"PK1": "GEOTYPE#{EntityType}",
	"SK1": "GEO#{ID}",
}

func init() {
	registry.RegisterIndexMap("coordinates", CoordinatesIndexMap)
}

// API is the subset of the DynamoDB client the store uses.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// Config holds the connection settings of the DynamoDB store.
type Config struct {
	AccessKey string `env:"AWS_ACCESS_KEY"`
	SecretKey string `env:"AWS_SECRET_KEY"`
	Region    string `env:"AWS_REGION" envDefault:"us-east-1"`
	Table     string `env:"AWS_DDB_TABLE"`
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string `env:"AWS_DDB_ENDPOINT"`
}

// coordinatesItem is the item layout of a coordinates geometry.
type coordinatesItem struct {
	ID         int64   `dynamodbav:"ID"`
	EntityType string  `dynamodbav:"EntityType"`
	Lat        float64 `dynamodbav:"Lat"`
	Lng        float64 `dynamodbav:"Lng"`
}

// Store persists geometries in a single DynamoDB table.
type Store struct {
	client    API
	tableName string
	gsi       GSIConfig
	logger    *zap.SugaredLogger
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are used
// when both keys are set, the default credential chain otherwise.
func NewDynamoDBClient(ctx context.Context, cfg Config, l *zap.SugaredLogger) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load AWS configuration")
	}

	client := sdk.NewFromConfig(awsCfg, func(o *sdk.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	logger.Or(l).Infow("DynamoDB client initialized", "table", cfg.Table, "region", cfg.Region)
	return client, nil
}

// Open creates a DynamoDB client from cfg and wraps it in a Store.
func Open(ctx context.Context, cfg Config, l *zap.SugaredLogger) (*Store, error) {
	if cfg.Table == "" {
		return nil, errors.NewValidationError("table", "DynamoDB table name is required")
	}
	client, err := NewDynamoDBClient(ctx, cfg, l)
	if err != nil {
		return nil, errors.Wrap(err, "create DynamoDB client")
	}
	return New(client, cfg.Table, l), nil
}

// New wraps an existing client.
func New(client API, tableName string, l *zap.SugaredLogger) *Store {
	gsi, _ := GetGSIConfig("GSI1")
	return &Store{client: client, tableName: tableName, gsi: gsi, logger: logger.Or(l)}
}

func (d *Store) Type() string    { return StoreType }
func (d *Store) Label() string   { return Label }
func (d *Store) Version() string { return Version }

// Supports lists the geometry types with a registered index map.
func (d *Store) Supports() []string {
	var out []string
	for _, t := range []string{"coordinates"} {
		if _, ok := registry.GetIndexMap(t); ok {
			out = append(out, t)
		}
	}
	return out
}

// Save puts a new item; an existing item for the id yields ErrAlreadyExists.
func (d *Store) Save(ctx context.Context, geometryType string, data storagemodels.Payload) (bool, error) {
	if !d.supports(geometryType) {
		return false, nil
	}
	id, _ := data.Int(storagemodels.KeyGeoID)
	item, ok := newItem(geometryType, id, data)
	if !ok {
		return false, nil
	}

	av, err := d.marshal(geometryType, item)
	if err != nil {
		return false, err
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           &d.tableName,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, errors.NewAlreadyExistsError(geometryType, strconv.FormatInt(id, 10))
		}
		return false, errors.Wrap(err, "PutItem failed")
	}
	d.logger.Debugw("Saved geometry", "geo_type", geometryType, "geo_id", id, "table", d.tableName)
	return true, nil
}

// Get fetches items by id; storagemodels.AllIDs queries the type index.
func (d *Store) Get(ctx context.Context, geometryType string, ids ...int64) ([]storagemodels.Record, error) {
	if !d.supports(geometryType) || len(ids) == 0 {
		return nil, nil
	}
	if slices.Contains(ids, storagemodels.AllIDs) {
		items, err := d.queryType(ctx, geometryType)
		if err != nil {
			return nil, err
		}
		return toRecords(items)
	}

	var items []map[string]types.AttributeValue
	for _, id := range ids {
		key, err := d.key(geometryType, id)
		if err != nil {
			return nil, err
		}
		out, err := d.client.GetItem(ctx, &sdk.GetItemInput{TableName: &d.tableName, Key: key})
		if err != nil {
			return nil, errors.Wrap(err, "GetItem error")
		}
		if out.Item != nil {
			items = append(items, out.Item)
		}
	}
	return toRecords(items)
}

// Update puts the item of id unconditionally.
func (d *Store) Update(ctx context.Context, geometryType string, id int64, data storagemodels.Payload) (bool, error) {
	if !d.supports(geometryType) {
		return false, nil
	}
	item, ok := newItem(geometryType, id, data)
	if !ok {
		return false, nil
	}
	av, err := d.marshal(geometryType, item)
	if err != nil {
		return false, err
	}
	if _, err := d.client.PutItem(ctx, &sdk.PutItemInput{TableName: &d.tableName, Item: av}); err != nil {
		return false, errors.Wrap(err, "PutItem failed")
	}
	return true, nil
}

// Delete removes the items of ids and reports whether any existed.
func (d *Store) Delete(ctx context.Context, geometryType string, ids ...int64) (bool, error) {
	if !d.supports(geometryType) || len(ids) == 0 {
		return false, nil
	}
	if slices.Contains(ids, storagemodels.AllIDs) {
		records, err := d.Get(ctx, geometryType, storagemodels.AllIDs)
		if err != nil {
			return false, err
		}
		ids = nil
		for _, r := range records {
			ids = append(ids, r.ID())
		}
	}

	removed := false
	for _, id := range ids {
		key, err := d.key(geometryType, id)
		if err != nil {
			return removed, err
		}
		out, err := d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
			TableName:    &d.tableName,
			Key:          key,
			ReturnValues: types.ReturnValueAllOld,
		})
		if err != nil {
			return removed, errors.Wrap(err, "failed to delete item in DynamoDB")
		}
		if len(out.Attributes) > 0 {
			removed = true
		}
	}
	return removed, nil
}

func (d *Store) supports(geometryType string) bool {
	return slices.Contains(d.Supports(), geometryType)
}

// marshal converts an item and adds the expanded index attributes.
func (d *Store) marshal(geometryType string, item coordinatesItem) (map[string]types.AttributeValue, error) {
	indexMap, ok := registry.GetIndexMap(geometryType)
	if !ok {
		return nil, errors.Wrapf(errors.ErrNoIndexMap, "geometry type %q", geometryType)
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal item")
	}
	for k, v := range expandMacros(indexMap, av) {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}
	return av, nil
}

func (d *Store) key(geometryType string, id int64) (map[string]types.AttributeValue, error) {
	indexMap, ok := registry.GetIndexMap(geometryType)
	if !ok {
		return nil, errors.Wrapf(errors.ErrNoIndexMap, "geometry type %q", geometryType)
	}
	av, err := attributevalue.MarshalMap(coordinatesItem{ID: id, EntityType: geometryType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal key")
	}
	return buildKeyFromExpanded(expandMacros(indexMap, av))
}

func newItem(geometryType string, id int64, data storagemodels.Payload) (coordinatesItem, bool) {
	lat, latOK := data.Float(storagemodels.KeyLat)
	lng, lngOK := data.Float(storagemodels.KeyLng)
	if id <= 0 || !latOK || !lngOK {
		return coordinatesItem{}, false
	}
	return coordinatesItem{
		ID:         id,
		EntityType: geometryType,
		Lat:        round(lat),
		Lng:        round(lng),
	}, true
}

func round(f float64) float64 {
	return decimal.NewFromFloat(f).Round(6).InexactFloat64()
}

func toRecords(items []map[string]types.AttributeValue) ([]storagemodels.Record, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make([]storagemodels.Record, 0, len(items))
	for _, raw := range items {
		var item coordinatesItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal item")
		}
		out = append(out, storagemodels.Record{
			storagemodels.KeyID:  item.ID,
			storagemodels.KeyLat: item.Lat,
			storagemodels.KeyLng: item.Lng,
		})
	}
	return out, nil
}
