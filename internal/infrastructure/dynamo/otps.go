package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/scode24/dsa-tracker-backend/internal/domain"
)

// OtpRepo is the ledger of live password-reset codes.
// PK: email. PutItem on the same key overwrites, so issuing a new code
// implicitly discards any previous one for that address. Expired records are
// removed by DynamoDB TTL, which is lazy, so reads re-check expires_at.
type OtpRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewOtpRepo(client *dynamodb.Client, tableName string) *OtpRepo {
	return &OtpRepo{client: client, tableName: tableName}
}

func (r *OtpRepo) Put(ctx context.Context, c *domain.OtpCode) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal otp: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// FindMatching reports whether a live code exists for email with the exact
// value code. A missing record and a wrong code are indistinguishable.
func (r *OtpRepo) FindMatching(ctx context.Context, email string, code int) (bool, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("email", email),
	})
	if err != nil {
		return false, err
	}
	if out.Item == nil {
		return false, nil
	}
	var c domain.OtpCode
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return false, err
	}
	if c.ExpiresAt < time.Now().Unix() {
		return false, nil
	}
	return c.Code == code, nil
}
