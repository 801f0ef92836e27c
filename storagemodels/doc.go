/*
Package storagemodels defines the persisted form of components.

ComponentRecord:
One component of one entity, keyed by entity id and component type name:

	record := storagemodels.ComponentRecord{
	    EntityID:      "4f1c...",
	    ComponentType: "modulef:Sprite",
	    Properties:    map[string]any{"x": 1.5, "y": 2.0, "texture": "player"},
	    UpdatedAt:     "2025-03-01T12:00:00.000Z",
	}

The package registers the record's DynamoDB index map on init: PK is
ENTITY#{EntityID} and SK is COMPONENT#{ComponentType}, so all components of
an entity share a partition.

QueryParams:
Parameters for querying the datastore. EntityQuery builds the query listing
all components of one entity:

	params := storagemodels.EntityQuery("4f1c...")
	params.Limit = aws.Int32(100)
*/
package storagemodels
