package repository

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"time"

	"draftingco/internal/domain/entities"
	"draftingco/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quote_submissions"

type quoteItem struct {
	ID            string `dynamodbav:"id"`
	UserEmail     string `dynamodbav:"user_email"`
	Configuration string `dynamodbav:"configuration"`
	EstimatePrice string `dynamodbav:"estimate_price"`
	DeliveryRange string `dynamodbav:"delivery_range"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists QuoteSubmission entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The configuration snapshot is stored as a single JSON document: quotes
// are written once and read whole, so there is nothing to query inside it.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.QuoteSubmission) (entities.QuoteSubmission, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.QuoteSubmission{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuoteSubmission{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuoteSubmission{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteSubmission, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteSubmission{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteSubmission{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteSubmission{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.QuoteSubmission) (quoteItem, error) {
	cfg, err := json.Marshal(q.Configuration)
	if err != nil {
		return quoteItem{}, err
	}
	return quoteItem{
		ID:            q.ID,
		UserEmail:     q.UserEmail,
		Configuration: string(cfg),
		EstimatePrice: floatToString(q.EstimatePrice),
		DeliveryRange: q.DeliveryRange,
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuoteItem(it quoteItem) (entities.QuoteSubmission, error) {
	var cfg entities.ProjectConfiguration
	if it.Configuration != "" {
		if err := json.Unmarshal([]byte(it.Configuration), &cfg); err != nil {
			return entities.QuoteSubmission{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	price, _ := strconv.ParseFloat(it.EstimatePrice, 64)
	return entities.QuoteSubmission{
		ID:            it.ID,
		UserEmail:     it.UserEmail,
		Configuration: cfg,
		EstimatePrice: price,
		DeliveryRange: it.DeliveryRange,
		CreatedAt:     createdAt,
	}, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
