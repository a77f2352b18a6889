package repository

import (
	"testing"
	"time"

	"mitsumori_tsuikyaku/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateItemMapping(t *testing.T) {
	amount := int64(300000)
	label := "特上"
	created := time.Date(2024, 4, 1, 9, 30, 0, 123, time.FixedZone("JST", 9*3600))
	e := entities.Estimate{
		ID:             "est-1",
		Token:          "tok",
		UserID:         "owner-1",
		CustomerName:   "山田様",
		Take:           entities.Plan{Amount: &amount, Label: &label},
		Amount:         &amount,
		ContractStatus: entities.ContractStatusTentative,
		ContractPlan:   entities.PlanTake,
		ContractSlots:  []string{"5/1 午前"},
		CreatedAt:      created,
		UpdatedAt:      created,
	}

	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	require.NoError(t, err)

	_, hasMatsuAmount := av["matsu"].(*types.AttributeValueMemberM).Value["amount"]
	assert.False(t, hasMatsuAmount, "unset plan amount must be omitted")
	assert.IsType(t, &types.AttributeValueMemberL{}, av["gallery_images"])
	assert.Equal(t, "2024-04-01T00:30:00.000000123Z", av["created_at"].(*types.AttributeValueMemberS).Value)

	got, err := decodeEstimate(av)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, int64(300000), *got.Take.Amount)
	assert.Equal(t, "特上", *got.Take.Label)
	assert.Nil(t, got.Matsu.Amount)
	assert.Equal(t, []string{}, got.GalleryImages)
	assert.Equal(t, []string{"5/1 午前"}, got.ContractSlots)
	assert.True(t, created.Equal(got.CreatedAt))
}

func TestMergeNames(t *testing.T) {
	assert.Equal(t, map[string]string{"#a": "a"}, mergeNames(nil, map[string]string{"#a": "a"}))
	assert.Equal(t, map[string]string{"#a": "a", "#b": "b"}, mergeNames(map[string]string{"#a": "a"}, map[string]string{"#b": "b"}))
}
