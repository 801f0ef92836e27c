/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/componentstore/registry"
)

// Key prefixes of the component record index map.
const (
	EntityKeyPrefix    = "ENTITY#"
	ComponentKeyPrefix = "COMPONENT#"
)

func init() {
	// One partition per entity, one item per component type.
	registry.RegisterIndexMap[ComponentRecord](map[string]string{
		"PK": EntityKeyPrefix + "{EntityID}",
		"SK": ComponentKeyPrefix + "{ComponentType}",
	})
}

// ComponentRecord is the persisted form of one component of one entity.
type ComponentRecord struct {
	// EntityID identifies the entity owning the component.
	EntityID string `json:"EntityID" dynamodbav:"EntityID"`

	// ComponentType is the registered name of the component type, e.g. "modulef:Sprite".
	ComponentType string `json:"ComponentType" dynamodbav:"ComponentType"`

	// Properties maps property names to their values.
	Properties map[string]any `json:"Properties,omitempty" dynamodbav:"Properties,omitempty"`

	// Timestamp of the capture.
	// Format: date-time
	UpdatedAt string `json:"UpdatedAt,omitempty" dynamodbav:"UpdatedAt,omitempty"`
}

// StorageKey is the key stores without an index map use for the record.
func (r ComponentRecord) StorageKey() string {
	return r.EntityID + "/" + r.ComponentType
}

// Updated parses UpdatedAt.
func (r ComponentRecord) Updated() (strfmt.DateTime, error) {
	return strfmt.ParseDateTime(r.UpdatedAt)
}

// QueryParams defines parameters for a DynamoDB Query operation.
type QueryParams struct {
	// TableName is the DynamoDB table name. Stores fall back to their own table when empty.
	TableName string
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// FilterExpression is an optional filter expression.
	FilterExpression *string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// Limit caps the total number of items returned.
	Limit *int32
	// ExclusiveStartKey for pagination
	ExclusiveStartKey map[string]types.AttributeValue
	// ScanIndexForward specifies the order for index traversal.
	// If true (default), traversal is in ascending order.
	// If false, traversal is in descending order.
	ScanIndexForward *bool
}

// EntityQuery selects every component record of one entity.
func EntityQuery(entityID string) *QueryParams {
	return &QueryParams{
		KeyConditionExpression: "PK = :pk",
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: EntityKeyPrefix + entityID},
		},
	}
}

// EntityOf returns the entity id an EntityQuery was built for.
func EntityOf(params *QueryParams) (string, bool) {
	if params == nil {
		return "", false
	}
	pk, ok := params.ExpressionAttributeValues[":pk"].(*types.AttributeValueMemberS)
	if !ok || len(pk.Value) < len(EntityKeyPrefix) || pk.Value[:len(EntityKeyPrefix)] != EntityKeyPrefix {
		return "", false
	}
	return pk.Value[len(EntityKeyPrefix):], true
}
