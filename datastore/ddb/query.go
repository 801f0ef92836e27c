/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/componentstore/errors"
	"github.com/suparena/componentstore/storagemodels"
)

// Query performs a query against the DynamoDB table using the provided parameters.
// Pages are followed until the table is exhausted or params.Limit items were read.
// Throttled pages are retried with a linear backoff.
func (d *DynamodbDataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	if params == nil || params.KeyConditionExpression == "" {
		return nil, errors.NewValidationError("KeyConditionExpression", "a key condition is required")
	}

	tableName := params.TableName
	if tableName == "" {
		tableName = d.tableName
	}

	input := &sdk.QueryInput{
		TableName:                 &tableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ScanIndexForward:          params.ScanIndexForward,
		ExclusiveStartKey:         params.ExclusiveStartKey,
	}

	var results []T
	for page := 1; ; page++ {
		out, err := d.queryWithRetry(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}

		for _, item := range out.Items {
			var v T
			if err := attributevalue.UnmarshalMap(item, &v); err != nil {
				return nil, fmt.Errorf("failed to unmarshal item: %w", err)
			}
			results = append(results, v)
			if params.Limit != nil && len(results) >= int(*params.Limit) {
				return results, nil
			}
		}

		d.logger.Debug("Query page read.", "table", tableName, "page", page, "items", len(out.Items))
		if len(out.LastEvaluatedKey) == 0 {
			return results, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// queryWithRetry executes a query, retrying throttled attempts.
func (d *DynamodbDataStore[T]) queryWithRetry(ctx context.Context, input *sdk.QueryInput) (*sdk.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := d.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !isRetryableError(err) {
			return nil, err
		}

		if attempt < d.maxRetries {
			backoff := time.Duration(attempt+1) * d.retryBackoff
			d.logger.Warn("Query throttled, retrying.", "attempt", attempt+1, "backoff", backoff, "error", err)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", d.maxRetries, lastErr)
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	var (
		throughput *types.ProvisionedThroughputExceededException
		limit      *types.RequestLimitExceeded
		internal   *types.InternalServerError
	)
	if stderrors.As(err, &throughput) || stderrors.As(err, &limit) || stderrors.As(err, &internal) {
		return true
	}

	var retryable interface{ IsRetryable() bool }
	if stderrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}
