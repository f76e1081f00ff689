package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"nexuspay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProcessedEventsTableName = "processed_events"
	DefaultProcessedEventTTL        = 24 * time.Hour
)

type processedEventItem struct {
	EventKey    string `dynamodbav:"event_key"`
	ProcessedAt string `dynamodbav:"processed_at"`
	ExpiresAt   int64  `dynamodbav:"expires_at"`
}

type dynamoItemAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// ProcessedEventDynamoRepository shares processed webhook keys across
// instances through DynamoDB.
//
// Table requirements:
//   - PK: event_key (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so an item past expires_at is
// reported as not seen and may be overwritten.
type ProcessedEventDynamoRepository struct {
	ddb       dynamoItemAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.IProcessedEventStore = (*ProcessedEventDynamoRepository)(nil)

// NewProcessedEventDynamoRepository uses PROCESSED_EVENTS_TABLE when tableName
// is empty.
func NewProcessedEventDynamoRepository(ddb dynamoItemAPI, tableName string, ttl time.Duration) *ProcessedEventDynamoRepository {
	if ttl <= 0 {
		ttl = DefaultProcessedEventTTL
	}
	if tableName == "" {
		tableName = getenvDefault("PROCESSED_EVENTS_TABLE", defaultProcessedEventsTableName)
	}
	return &ProcessedEventDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (r *ProcessedEventDynamoRepository) Seen(ctx context.Context, key string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"event_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}

	var it processedEventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return false, err
	}
	if it.ExpiresAt > 0 && r.now().UTC().Unix() >= it.ExpiresAt {
		return false, nil
	}
	return true, nil
}

func (r *ProcessedEventDynamoRepository) Mark(ctx context.Context, key string) error {
	now := r.now().UTC()
	it := processedEventItem{
		EventKey:    key,
		ProcessedAt: now.Format(time.RFC3339Nano),
		ExpiresAt:   now.Add(r.ttl).Unix(),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#key) OR #expires_at < :now"),
		ExpressionAttributeNames: map[string]string{
			"#key":        "event_key",
			"#expires_at": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		},
	})
	if err != nil {
		// Another instance marked the same live key first.
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}
