package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/database"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type planItem struct {
	Amount      *int64  `dynamodbav:"amount,omitempty"`
	Label       *string `dynamodbav:"label,omitempty"`
	Description *string `dynamodbav:"description,omitempty"`
}

type estimateItem struct {
	ID                 string   `dynamodbav:"id"`
	Token              string   `dynamodbav:"token"`
	UserID             string   `dynamodbav:"user_id"`
	CustomerName       string   `dynamodbav:"customer_name"`
	CustomerPhone      string   `dynamodbav:"customer_phone,omitempty"`
	Matsu              planItem `dynamodbav:"matsu"`
	Take               planItem `dynamodbav:"take"`
	Ume                planItem `dynamodbav:"ume"`
	Amount             *int64   `dynamodbav:"amount,omitempty"`
	GalleryImages      []string `dynamodbav:"gallery_images"`
	GalleryDescription string   `dynamodbav:"gallery_description,omitempty"`
	ContractStatus     string   `dynamodbav:"contract_status,omitempty"`
	ContractPlan       string   `dynamodbav:"contract_plan,omitempty"`
	ContractSlots      []string `dynamodbav:"contract_slots"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

type tokenItem struct {
	Token      string `dynamodbav:"token"`
	EstimateID string `dynamodbav:"estimate_id"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - estimates PK: id (string)
//   - estimates GSI: user_id-created_at-index (PK: user_id, SK: created_at)
//   - estimate_tokens PK: token (string), one item per issued token
//
// Token uniqueness is enforced by writing the estimate and its token item in
// one transaction, each guarded by attribute_not_exists.
type EstimateDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	tokensTable string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client, tables database.Tables) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:         ddb,
		tableName:   tables.Estimates,
		tokensTable: tables.EstimateTokens,
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}
	tokenAV, err := attributevalue.MarshalMap(tokenItem{Token: e.Token, EstimateID: e.ID})
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tokensTable),
				Item:                     tokenAV,
				ConditionExpression:      aws.String("attribute_not_exists(#token)"),
				ExpressionAttributeNames: map[string]string{"#token": "token"},
			}},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && len(tce.CancellationReasons) > 1 &&
			aws.ToString(tce.CancellationReasons[1].Code) == "ConditionalCheckFailed" {
			return entities.Estimate{}, interfaces.ErrTokenConflict
		}
		return entities.Estimate{}, fmt.Errorf("create estimate: %w", err)
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}
	return decodeEstimate(out.Item)
}

func (r *EstimateDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tokensTable),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}
	var it tokenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}

	e, err := r.GetByID(ctx, it.EstimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.Token != token {
		return entities.Estimate{}, nil
	}
	return e, nil
}

func (r *EstimateDynamoRepository) FindByIDAndToken(ctx context.Context, id, token string) (entities.Estimate, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" || e.Token != token {
		return entities.Estimate{}, nil
	}
	return e, nil
}

func (r *EstimateDynamoRepository) ListByOwner(ctx context.Context, userID string) ([]entities.Estimate, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.EstimatesOwnerIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	})

	items := make([]entities.Estimate, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			e, err := decodeEstimate(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, e)
		}
	}
	return items, nil
}

func (r *EstimateDynamoRepository) UpdateContent(ctx context.Context, id, userID string, c entities.EstimateContent) (entities.Estimate, error) {
	plans := make(map[string]types.AttributeValue, 3)
	for name, p := range map[string]entities.Plan{":matsu": c.Matsu, ":take": c.Take, ":ume": c.Ume} {
		av, err := attributevalue.Marshal(toPlanItem(p))
		if err != nil {
			return entities.Estimate{}, err
		}
		plans[name] = av
	}
	gallery, err := attributevalue.Marshal(nonNil(c.GalleryImages))
	if err != nil {
		return entities.Estimate{}, err
	}

	updated, _, err := r.update(ctx, id, "#user_id = :user_id", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #customer_name = :customer_name, #customer_phone = :customer_phone, " +
			"#matsu = :matsu, #take = :take, #ume = :ume, " +
			"#gallery_images = :gallery_images, #gallery_description = :gallery_description, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":user_id":             &types.AttributeValueMemberS{Value: userID},
			":customer_name":       &types.AttributeValueMemberS{Value: c.CustomerName},
			":customer_phone":      &types.AttributeValueMemberS{Value: c.CustomerPhone},
			":matsu":               plans[":matsu"],
			":take":                plans[":take"],
			":ume":                 plans[":ume"],
			":gallery_images":      gallery,
			":gallery_description": &types.AttributeValueMemberS{Value: c.GalleryDescription},
			":updated_at":          &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#user_id":             "user_id",
			"#customer_name":       "customer_name",
			"#customer_phone":      "customer_phone",
			"#matsu":               "matsu",
			"#take":                "take",
			"#ume":                 "ume",
			"#gallery_images":      "gallery_images",
			"#gallery_description": "gallery_description",
			"#updated_at":          "updated_at",
			"#amount":              "amount",
		}
		if c.Amount != nil {
			expr += ", #amount = :amount"
			vals[":amount"] = &types.AttributeValueMemberN{Value: fmt.Sprint(*c.Amount)}
		} else {
			expr += " REMOVE #amount"
		}
		return expr, vals, names
	})
	return updated, err
}

func (r *EstimateDynamoRepository) UpdateContract(ctx context.Context, id string, u entities.ContractUpdate) (entities.Estimate, error) {
	slots, err := attributevalue.Marshal(nonNil(u.Slots))
	if err != nil {
		return entities.Estimate{}, err
	}

	guard := "(attribute_not_exists(#contract_status) OR #contract_status <> :closed)"
	updated, before, err := r.update(ctx, id, guard, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #contract_status = :tentative, #contract_plan = :plan, #contract_slots = :slots, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":closed":     &types.AttributeValueMemberS{Value: string(entities.ContractStatusClosed)},
			":tentative":  &types.AttributeValueMemberS{Value: string(entities.ContractStatusTentative)},
			":plan":       &types.AttributeValueMemberS{Value: string(u.Plan)},
			":slots":      slots,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#contract_status": "contract_status",
			"#contract_plan":   "contract_plan",
			"#contract_slots":  "contract_slots",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" && before.IsClosed() {
		return entities.Estimate{}, interfaces.ErrContractClosed
	}
	return updated, nil
}

func (r *EstimateDynamoRepository) Close(ctx context.Context, id, userID string) (entities.Estimate, error) {
	updated, _, err := r.update(ctx, id, "#user_id = :user_id", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #contract_status = :closed, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":user_id":    &types.AttributeValueMemberS{Value: userID},
			":closed":     &types.AttributeValueMemberS{Value: string(entities.ContractStatusClosed)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#user_id":         "user_id",
			"#contract_status": "contract_status",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
	return updated, err
}

// update applies build to an existing row that also satisfies guard. When the
// condition fails it returns the zero Estimate together with the row as it
// was, which is zero too if the row does not exist.
func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	guard string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Estimate, entities.Estimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	cond := "attribute_exists(#id)"
	if guard != "" {
		cond += " AND " + guard
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String(cond),
		UpdateExpression:                    aws.String(updateExpr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Estimate{}, entities.Estimate{}, nil
			}
			before, derr := decodeEstimate(cfe.Item)
			return entities.Estimate{}, before, derr
		}
		return entities.Estimate{}, entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, entities.Estimate{}, nil
	}
	updated, err := decodeEstimate(out.Attributes)
	return updated, entities.Estimate{}, err
}

func decodeEstimate(raw map[string]types.AttributeValue) (entities.Estimate, error) {
	var it estimateItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toPlanItem(p entities.Plan) planItem {
	return planItem{Amount: p.Amount, Label: p.Label, Description: p.Description}
}

func fromPlanItem(it planItem) entities.Plan {
	return entities.Plan{Amount: it.Amount, Label: it.Label, Description: it.Description}
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:                 e.ID,
		Token:              e.Token,
		UserID:             e.UserID,
		CustomerName:       e.CustomerName,
		CustomerPhone:      e.CustomerPhone,
		Matsu:              toPlanItem(e.Matsu),
		Take:               toPlanItem(e.Take),
		Ume:                toPlanItem(e.Ume),
		Amount:             e.Amount,
		GalleryImages:      nonNil(e.GalleryImages),
		GalleryDescription: e.GalleryDescription,
		ContractStatus:     string(e.ContractStatus),
		ContractPlan:       string(e.ContractPlan),
		ContractSlots:      nonNil(e.ContractSlots),
		CreatedAt:          formatTime(e.CreatedAt),
		UpdatedAt:          formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	return entities.Estimate{
		ID:                 it.ID,
		Token:              it.Token,
		UserID:             it.UserID,
		CustomerName:       it.CustomerName,
		CustomerPhone:      it.CustomerPhone,
		Matsu:              fromPlanItem(it.Matsu),
		Take:               fromPlanItem(it.Take),
		Ume:                fromPlanItem(it.Ume),
		Amount:             it.Amount,
		GalleryImages:      nonNil(it.GalleryImages),
		GalleryDescription: it.GalleryDescription,
		ContractStatus:     entities.ContractStatus(it.ContractStatus),
		ContractPlan:       entities.PlanKey(it.ContractPlan),
		ContractSlots:      nonNil(it.ContractSlots),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
