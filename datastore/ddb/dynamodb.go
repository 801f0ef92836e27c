/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/componentstore/errors"
	"github.com/suparena/componentstore/registry"
)

// Client is the subset of the DynamoDB API the store uses.
type Client interface {
	GetItem(ctx context.Context, in *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, in *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, in *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// DynamodbDataStore implements datastore.DataStore[T] by using AWS DynamoDB as the underlying data store.
type DynamodbDataStore[T any] struct {
	client       Client
	tableName    string
	logger       *slog.Logger
	maxRetries   int
	retryBackoff time.Duration
}

// Option configures a DynamodbDataStore.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	maxRetries   int
	retryBackoff time.Duration
}

// WithLogger sets the store's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRetry sets how often throttled queries are retried and the base backoff.
func WithRetry(maxRetries int, backoff time.Duration) Option {
	return func(o *options) {
		o.maxRetries = maxRetries
		o.retryBackoff = backoff
	}
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

func expandMacros(indexMap map[string]string, keysInput any) (map[string]string, error) {
	// Convert keysInput to a map of attribute values
	av, err := attributevalue.MarshalMap(keysInput)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keysInput: %w", err)
	}

	res := make(map[string]string, len(indexMap))

	for fieldName, template := range indexMap {
		expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			key := strings.Trim(macro, "{}")

			val, ok := av[key]
			if !ok {
				return ""
			}

			switch tv := val.(type) {
			case *types.AttributeValueMemberS:
				return tv.Value
			case *types.AttributeValueMemberN:
				return tv.Value
			case *types.AttributeValueMemberBOOL:
				return fmt.Sprintf("%v", tv.Value)
			default:
				// binary, sets, lists and maps do not form keys
				return ""
			}
		})
		res[fieldName] = expanded
	}

	return res, nil
}

// expandStringKey replaces every macro of the index map with key.
func expandStringKey(indexMap map[string]string, key string) map[string]string {
	expanded := make(map[string]string, len(indexMap))
	for field, template := range indexMap {
		expanded[field] = macroPattern.ReplaceAllLiteralString(template, key)
	}
	return expanded
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
// Empty credentials fall back to the default provider chain.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(awsRegion)}
	if awsAccessKey != "" || awsSecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// NewDynamodbDataStore constructs a new DynamodbDataStore for type T.
func NewDynamodbDataStore[T any](ctx context.Context, awsAccessKey, awsSecretKey, awsRegion, awsDDBTableName string, opts ...Option) (*DynamodbDataStore[T], error) {
	client, err := NewDynamoDBClient(ctx, awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewWithClient[T](client, awsDDBTableName, opts...)
}

// NewWithClient constructs a store over an existing client.
func NewWithClient[T any](client Client, tableName string, opts ...Option) (*DynamodbDataStore[T], error) {
	if tableName == "" {
		return nil, errors.NewValidationError("tableName", "table name is required")
	}
	if _, ok := registry.GetIndexMap[T](); !ok {
		var zero T
		return nil, fmt.Errorf("%w for %T", errors.ErrNoIndexMap, zero)
	}

	o := options{logger: slog.Default(), maxRetries: 3, retryBackoff: 100 * time.Millisecond}
	for _, opt := range opts {
		opt(&o)
	}

	o.logger.Debug("DynamoDB store initialized.", "table", tableName)
	return &DynamodbDataStore[T]{
		client:       client,
		tableName:    tableName,
		logger:       o.logger,
		maxRetries:   o.maxRetries,
		retryBackoff: o.retryBackoff,
	}, nil
}

// TableName returns the table the store reads and writes.
func (d *DynamodbDataStore[T]) TableName() string { return d.tableName }

// GetOne retrieves a single item. A missing item is a NotFoundError.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, keyInput any) (*T, error) {
	keyMap, err := d.key(keyInput)
	if err != nil {
		return nil, err
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		var zero T
		return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), describeKey(keyMap))
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores the given 'entity' in the underlying data store using macros in 'indexMap'
// to populate partition/sort keys (and possibly GSIs).
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return errors.ErrNoIndexMap
	}

	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	expanded, err := expandMacros(indexMap, entity)
	if err != nil {
		return err
	}
	if _, err := buildKeyFromExpanded(expanded); err != nil {
		return err
	}

	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes an item. Deleting a missing item is not an error.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, keyInput any) error {
	keyMap, err := d.key(keyInput)
	if err != nil {
		return err
	}

	_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return errors.NewConditionFailedError("delete", cfe.ErrorMessage())
		}
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

// key builds the primary key for keyInput: a string fills every macro, any
// other value is marshaled and its fields fill the macros by name.
func (d *DynamodbDataStore[T]) key(keyInput any) (map[string]types.AttributeValue, error) {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return nil, errors.ErrNoIndexMap
	}

	var expanded map[string]string
	switch k := keyInput.(type) {
	case string:
		expanded = expandStringKey(indexMap, k)
	default:
		var err error
		if expanded, err = expandMacros(indexMap, keyInput); err != nil {
			return nil, err
		}
	}
	return buildKeyFromExpanded(expanded)
}

// buildKeyFromExpanded builds a DynamoDB key from the expanded index map.
// The expanded map must hold non-empty values for "PK" and "SK".
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded["PK"]
	sk, okSK := expanded["SK"]

	if !okPK || !okSK || pk == "" || sk == "" || strings.HasSuffix(pk, "#") || strings.HasSuffix(sk, "#") {
		return nil, errors.NewValidationError("key", fmt.Sprintf("incomplete key PK=%q SK=%q", pk, sk))
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}

func describeKey(key map[string]types.AttributeValue) string {
	var parts []string
	for _, name := range []string{"PK", "SK"} {
		if s, ok := key[name].(*types.AttributeValueMemberS); ok {
			parts = append(parts, s.Value)
		}
	}
	return strings.Join(parts, "|")
}
