package records

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"audit-backend/internal/audit"
)

// DynamoRepo persists audit records in a DynamoDB table keyed by userId.
type DynamoRepo struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoRepo constructs a DynamoDB-backed record store.
func NewDynamoRepo(cfg aws.Config, table string) (*DynamoRepo, error) {
	if table == "" {
		return nil, fmt.Errorf("USER_TABLE_NAME is required")
	}
	return &DynamoRepo{
		client: dynamodb.NewFromConfig(cfg),
		table:  table,
	}, nil
}

// Put overwrites the record at rec.UserID. Single-item writes are atomic, so
// no partial record is ever observable.
func (r *DynamoRepo) Put(ctx context.Context, rec audit.Record) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal record key=%s: %w", rec.UserID, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put item table=%s key=%s: %w", r.table, rec.UserID, err)
	}
	return nil
}

// Delete removes the record at key. Deleting an absent key succeeds.
func (r *DynamoRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return fmt.Errorf("dynamodb delete item table=%s key=%s: %w", r.table, key, err)
	}
	return nil
}

var _ audit.RecordStore = (*DynamoRepo)(nil)
