package database

import (
	"context"
	"errors"
	"fmt"
	"os"

	"mitsumori_tsuikyaku/internal/infrastructure/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Tables names every DynamoDB table the service touches.
type Tables struct {
	Estimates        string
	EstimateTokens   string
	AccessLogs       string
	EstimateContacts string
	Profiles         string
	LineSettings     string
	Accounts         string
}

// Secondary indexes.
const (
	EstimatesOwnerIndex     = "user_id-created_at-index"
	AccessLogsEstimateIndex = "estimate_id-created_at-index"
)

// TablesFromEnv reads table names, falling back to the defaults.
func TablesFromEnv() Tables {
	return Tables{
		Estimates:        getenvDefault("ESTIMATES_TABLE", "estimates"),
		EstimateTokens:   getenvDefault("ESTIMATE_TOKENS_TABLE", "estimate_tokens"),
		AccessLogs:       getenvDefault("ACCESS_LOGS_TABLE", "access_logs"),
		EstimateContacts: getenvDefault("ESTIMATE_CONTACTS_TABLE", "estimate_contacts"),
		Profiles:         getenvDefault("PROFILES_TABLE", "profiles"),
		LineSettings:     getenvDefault("LINE_SETTINGS_TABLE", "line_settings"),
		Accounts:         getenvDefault("ACCOUNTS_TABLE", "accounts"),
	}
}

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: ap-northeast-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB(ctx context.Context) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfigFromEnv(ctx)
	if err != nil {
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "ap-northeast-1")
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// EnsureTables creates missing tables with on-demand billing. It is meant for
// DynamoDB Local; production tables are provisioned outside the service.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, t Tables, log *logger.Logger) error {
	for _, in := range tableDefinitions(t) {
		_, err := ddb.CreateTable(ctx, in)
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return fmt.Errorf("create table %s: %w", aws.ToString(in.TableName), err)
		}
		log.Info("dynamodb table created", "table", aws.ToString(in.TableName))
	}
	return nil
}

func tableDefinitions(t Tables) []*dynamodb.CreateTableInput {
	str := types.ScalarAttributeTypeS
	hash := func(name string) types.KeySchemaElement {
		return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}
	}
	rng := func(name string) types.KeySchemaElement {
		return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeRange}
	}
	attr := func(name string) types.AttributeDefinition {
		return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: str}
	}
	gsi := func(name, pk, sk string) types.GlobalSecondaryIndex {
		return types.GlobalSecondaryIndex{
			IndexName:  aws.String(name),
			KeySchema:  []types.KeySchemaElement{hash(pk), rng(sk)},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}
	}
	simple := func(table, pk string) *dynamodb.CreateTableInput {
		return &dynamodb.CreateTableInput{
			TableName:            aws.String(table),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{attr(pk)},
			KeySchema:            []types.KeySchemaElement{hash(pk)},
		}
	}

	return []*dynamodb.CreateTableInput{
		{
			TableName:              aws.String(t.Estimates),
			BillingMode:            types.BillingModePayPerRequest,
			AttributeDefinitions:   []types.AttributeDefinition{attr("id"), attr("user_id"), attr("created_at")},
			KeySchema:              []types.KeySchemaElement{hash("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{gsi(EstimatesOwnerIndex, "user_id", "created_at")},
		},
		simple(t.EstimateTokens, "token"),
		{
			TableName:              aws.String(t.AccessLogs),
			BillingMode:            types.BillingModePayPerRequest,
			AttributeDefinitions:   []types.AttributeDefinition{attr("id"), attr("estimate_id"), attr("created_at")},
			KeySchema:              []types.KeySchemaElement{hash("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{gsi(AccessLogsEstimateIndex, "estimate_id", "created_at")},
		},
		{
			TableName:            aws.String(t.EstimateContacts),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{attr("estimate_id"), attr("line_user_id")},
			KeySchema:            []types.KeySchemaElement{hash("estimate_id"), rng("line_user_id")},
		},
		simple(t.Profiles, "user_id"),
		simple(t.LineSettings, "user_id"),
		simple(t.Accounts, "email"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
