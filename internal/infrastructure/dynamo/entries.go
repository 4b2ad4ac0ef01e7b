package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/scode24/dsa-tracker-backend/internal/domain"
)

// EntryRepo provides typed DynamoDB operations for the log-entries table.
type EntryRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewEntryRepo(client *dynamodb.Client, tableName string) *EntryRepo {
	return &EntryRepo{client: client, tableName: tableName}
}

func (r *EntryRepo) Put(ctx context.Context, e *domain.LogEntry) error {
	item, err := attributevalue.MarshalMap(e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// UpdateOwned applies a partial update to an entry, conditioned on the entry
// belonging to userID. A condition failure maps to ErrNotFound so callers
// cannot distinguish "not yours" from "does not exist".
func (r *EntryRepo) UpdateOwned(ctx context.Context, entryID, userID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	ue.Names["#owner"] = "user_id"
	ue.Values[":owner"] = &types.AttributeValueMemberS{Value: userID}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("entry_id", entryID),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("#owner = :owner"),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("entry not found: %w", domain.ErrNotFound)
		}
		return err
	}
	return nil
}

// DeleteOwned removes an entry, conditioned on ownership like UpdateOwned.
func (r *EntryRepo) DeleteOwned(ctx context.Context, entryID, userID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("entry_id", entryID),
		ConditionExpression: aws.String("#owner = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#owner": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("entry not found: %w", domain.ErrNotFound)
		}
		return err
	}
	return nil
}

// ListByUser returns every entry owned by userID via the user_id GSI.
func (r *EntryRepo) ListByUser(ctx context.Context, userID string) ([]domain.LogEntry, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("user_id-index"),
		KeyConditionExpression:    aws.String("#u = :v"),
		ExpressionAttributeNames:  map[string]string{"#u": "user_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: userID}},
	})
	if err != nil {
		return nil, err
	}
	var entries []domain.LogEntry
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
