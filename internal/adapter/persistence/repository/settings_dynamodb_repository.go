package repository

import (
	"context"
	"fmt"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/database"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type profileItem struct {
	UserID      string `dynamodbav:"user_id"`
	CompanyName string `dynamodbav:"company_name"`
	PhoneNumber string `dynamodbav:"phone_number,omitempty"`
	LineURL     string `dynamodbav:"line_url,omitempty"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type lineSettingsItem struct {
	UserID              string `dynamodbav:"user_id"`
	SealedChannelToken  string `dynamodbav:"channel_access_token"`
	SealedChannelSecret string `dynamodbav:"channel_secret"`
	LiffURL             string `dynamodbav:"liff_url"`
	LiffID              string `dynamodbav:"liff_id"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository keeps one profile item and one line settings item
// per owner, both keyed by user_id.
type SettingsDynamoRepository struct {
	ddb           *dynamodb.Client
	profilesTable string
	lineTable     string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client, tables database.Tables) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{ddb: ddb, profilesTable: tables.Profiles, lineTable: tables.LineSettings}
}

func (r *SettingsDynamoRepository) GetProfile(ctx context.Context, userID string) (entities.Profile, error) {
	var it profileItem
	found, err := r.get(ctx, r.profilesTable, userID, &it)
	if err != nil || !found {
		return entities.Profile{}, err
	}
	return entities.Profile{
		UserID:      it.UserID,
		CompanyName: it.CompanyName,
		PhoneNumber: it.PhoneNumber,
		LineURL:     it.LineURL,
		UpdatedAt:   parseTime(it.UpdatedAt),
	}, nil
}

func (r *SettingsDynamoRepository) SaveProfile(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	err := r.put(ctx, r.profilesTable, profileItem{
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		PhoneNumber: p.PhoneNumber,
		LineURL:     p.LineURL,
		UpdatedAt:   formatTime(p.UpdatedAt),
	})
	if err != nil {
		return entities.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

func (r *SettingsDynamoRepository) GetLineSettings(ctx context.Context, userID string) (entities.LineSettings, error) {
	var it lineSettingsItem
	found, err := r.get(ctx, r.lineTable, userID, &it)
	if err != nil || !found {
		return entities.LineSettings{}, err
	}
	return entities.LineSettings{
		UserID:              it.UserID,
		SealedChannelToken:  it.SealedChannelToken,
		SealedChannelSecret: it.SealedChannelSecret,
		LiffURL:             it.LiffURL,
		LiffID:              it.LiffID,
		UpdatedAt:           parseTime(it.UpdatedAt),
	}, nil
}

func (r *SettingsDynamoRepository) SaveLineSettings(ctx context.Context, s entities.LineSettings) (entities.LineSettings, error) {
	err := r.put(ctx, r.lineTable, lineSettingsItem{
		UserID:              s.UserID,
		SealedChannelToken:  s.SealedChannelToken,
		SealedChannelSecret: s.SealedChannelSecret,
		LiffURL:             s.LiffURL,
		LiffID:              s.LiffID,
		UpdatedAt:           formatTime(s.UpdatedAt),
	})
	if err != nil {
		return entities.LineSettings{}, fmt.Errorf("save line settings: %w", err)
	}
	return s, nil
}

func (r *SettingsDynamoRepository) get(ctx context.Context, table, userID string, out interface{}) (bool, error) {
	res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Item, out)
}

func (r *SettingsDynamoRepository) put(ctx context.Context, table string, item interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	return err
}
