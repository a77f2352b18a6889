package response

import (
	"testing"
	"time"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 { return &v }

func tokyo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	return loc
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "¥1,234", FormatYen(1234))
	assert.Equal(t, "¥0", FormatYen(0))
	assert.Equal(t, "¥1,200,000", FormatAmount(i64(1200000)))
	assert.Equal(t, NoAmount, FormatAmount(nil))
}

func TestFormatDate_UsesDisplayZone(t *testing.T) {
	ts := time.Date(2024, 5, 31, 16, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024/06/01", FormatDate(ts, tokyo(t)))
	assert.Equal(t, "2024/06/01 01:30", FormatDateTime(ts, tokyo(t)))
	assert.Equal(t, "2024/05/31", FormatDate(ts, nil))
	assert.Equal(t, "", FormatDate(time.Time{}, nil))
}

func TestFromEstimate(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	e := entities.Estimate{
		ID:             "est-1",
		Token:          "tok",
		CustomerName:   "山田",
		Take:           entities.Plan{Amount: i64(120000)},
		Amount:         i64(120000),
		ContractStatus: entities.ContractStatusTentative,
		ContractPlan:   entities.PlanTake,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res := FromEstimate(e, time.UTC)
	if res.ID != "est-1" || res.Token != "tok" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.AmountText != "¥120,000" || res.ContractPlanLabel != "竹" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	require.Len(t, res.Plans, 3)
	assert.False(t, res.Plans[0].Offered)
	assert.Equal(t, NoAmount, res.Plans[0].AmountText)
	assert.True(t, res.Plans[1].Offered)
	assert.Equal(t, "竹プラン", res.Plans[1].Label)
	assert.NotNil(t, res.GalleryImages)
	assert.NotNil(t, res.ContractSlots)
	assert.Equal(t, "2024/06/01", res.CreatedDate)
}

func TestFromActivity(t *testing.T) {
	items := []entities.ActivityItem{
		{Log: entities.AccessLog{ID: "l1", EventType: entities.EventStayPrice}, EstimateID: "est-1", CustomerName: "山田", Amount: i64(5000)},
		{Log: entities.AccessLog{ID: "l2", EventType: "plan_select_ume"}, EstimateID: "est-2", CustomerName: "佐藤"},
	}

	res := FromActivity(items, time.UTC)
	require.Len(t, res, 2)
	assert.True(t, res[0].Urgent)
	assert.Equal(t, "金額欄をじっくり見ています", res[0].Action)
	assert.Equal(t, "¥5,000", res[0].AmountText)
	assert.False(t, res[1].Urgent)
	assert.Equal(t, "梅プランを選択しました", res[1].Action)
	assert.Equal(t, NoAmount, res[1].AmountText)
}

func TestFromPublicEstimate(t *testing.T) {
	pe := usecase.PublicEstimate{
		ID:    "est-1",
		Token: "tok",
		Plans: []usecase.PublicPlan{
			{Key: entities.PlanTake, Label: "竹プラン", Amount: 98000, Recommended: true},
		},
		IssuedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	res := FromPublicEstimate(pe, time.UTC)
	require.Len(t, res.Plans, 1)
	assert.Equal(t, "¥98,000", res.Plans[0].AmountText)
	assert.True(t, res.Plans[0].Recommended)
	assert.NotNil(t, res.Plans[0].Perks)
	assert.NotNil(t, res.GalleryImages)
	assert.Equal(t, "2024/06/01", res.IssuedDate)
}
