package repository

import (
	"context"
	"fmt"
	"sort"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/database"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type estimateContactItem struct {
	EstimateID  string  `dynamodbav:"estimate_id"`
	LineUserID  string  `dynamodbav:"line_user_id"`
	Token       string  `dynamodbav:"token"`
	DisplayName *string `dynamodbav:"display_name,omitempty"`
	PictureURL  *string `dynamodbav:"picture_url,omitempty"`
	LinkedAt    string  `dynamodbav:"linked_at"`
}

// EstimateContactDynamoRepository persists EstimateContact entities.
//
// Table requirements:
//   - PK: estimate_id (string), SK: line_user_id (string)
//
// The composite key makes PutItem an upsert on (estimate_id, line_user_id).
type EstimateContactDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateContactRepository = (*EstimateContactDynamoRepository)(nil)

func NewEstimateContactDynamoRepository(ddb *dynamodb.Client, tables database.Tables) *EstimateContactDynamoRepository {
	return &EstimateContactDynamoRepository{ddb: ddb, tableName: tables.EstimateContacts}
}

func (r *EstimateContactDynamoRepository) Upsert(ctx context.Context, c entities.EstimateContact) (entities.EstimateContact, error) {
	av, err := attributevalue.MarshalMap(estimateContactItem{
		EstimateID:  c.EstimateID,
		LineUserID:  c.LineUserID,
		Token:       c.Token,
		DisplayName: c.DisplayName,
		PictureURL:  c.PictureURL,
		LinkedAt:    formatTime(c.LinkedAt),
	})
	if err != nil {
		return entities.EstimateContact{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.EstimateContact{}, fmt.Errorf("upsert estimate contact: %w", err)
	}
	return c, nil
}

func (r *EstimateContactDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateContact, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.EstimateContact, 0, len(out.Items))
	for _, raw := range out.Items {
		var it estimateContactItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.EstimateContact{
			EstimateID:  it.EstimateID,
			LineUserID:  it.LineUserID,
			Token:       it.Token,
			DisplayName: it.DisplayName,
			PictureURL:  it.PictureURL,
			LinkedAt:    parseTime(it.LinkedAt),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].LinkedAt.After(items[j].LinkedAt) })
	return items, nil
}
