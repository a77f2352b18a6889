package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/database"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"golang.org/x/sync/errgroup"
)

// accessLogFanOut bounds concurrent per-estimate queries.
const accessLogFanOut = 8

type accessLogItem struct {
	ID         string `dynamodbav:"id"`
	EstimateID string `dynamodbav:"estimate_id"`
	EventType  string `dynamodbav:"event_type"`
	UserAgent  string `dynamodbav:"user_agent,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// AccessLogDynamoRepository persists AccessLog entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-created_at-index (PK: estimate_id, SK: created_at)
type AccessLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccessLogRepository = (*AccessLogDynamoRepository)(nil)

func NewAccessLogDynamoRepository(ddb *dynamodb.Client, tables database.Tables) *AccessLogDynamoRepository {
	return &AccessLogDynamoRepository{ddb: ddb, tableName: tables.AccessLogs}
}

func (r *AccessLogDynamoRepository) Create(ctx context.Context, l entities.AccessLog) error {
	av, err := attributevalue.MarshalMap(accessLogItem{
		ID:         l.ID,
		EstimateID: l.EstimateID,
		EventType:  l.EventType,
		UserAgent:  l.UserAgent,
		CreatedAt:  formatTime(l.CreatedAt),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("insert access log: %w", err)
	}
	return nil
}

// ListRecentByEstimateIDs queries each estimate's partition and merges the
// newest limit rows.
func (r *AccessLogDynamoRepository) ListRecentByEstimateIDs(ctx context.Context, estimateIDs []string, limit int) ([]entities.AccessLog, error) {
	if len(estimateIDs) == 0 || limit <= 0 {
		return []entities.AccessLog{}, nil
	}

	var (
		mu  sync.Mutex
		all []entities.AccessLog
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(accessLogFanOut)
	for _, id := range estimateIDs {
		g.Go(func() error {
			logs, err := r.queryEstimate(gctx, id, limit)
			if err != nil {
				return err
			}
			mu.Lock()
			all = append(all, logs...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if len(all) > limit {
		all = all[:limit]
	}
	if all == nil {
		all = []entities.AccessLog{}
	}
	return all, nil
}

func (r *AccessLogDynamoRepository) queryEstimate(ctx context.Context, estimateID string, limit int) ([]entities.AccessLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.AccessLogsEstimateIndex),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.AccessLog, 0, len(out.Items))
	for _, raw := range out.Items {
		var it accessLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.AccessLog{
			ID:         it.ID,
			EstimateID: it.EstimateID,
			EventType:  it.EventType,
			UserAgent:  it.UserAgent,
			CreatedAt:  parseTime(it.CreatedAt),
		})
	}
	return items, nil
}
