package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestParsePlanKey(t *testing.T) {
	for _, raw := range []string{"matsu", "take", "ume"} {
		k, ok := ParsePlanKey(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, PlanKey(raw), k)
	}
	for _, raw := range []string{"", "MATSU", " take", "gold"} {
		_, ok := ParsePlanKey(raw)
		assert.False(t, ok, raw)
	}
}

func TestPlan_Fallbacks(t *testing.T) {
	p := Plan{Label: ptr("  "), Description: ptr("外壁＋屋根")}
	assert.Equal(t, "松プラン", p.LabelOr(PlanMatsu.DefaultLabel()))
	assert.Equal(t, "外壁＋屋根", p.DescriptionOr(PlanMatsu.DefaultDescription()))
	assert.False(t, p.Offered())
}

func TestEstimate_PlanAccessors(t *testing.T) {
	var e Estimate
	assert.False(t, e.HasPricedPlan())

	e.SetPlan(PlanTake, Plan{Amount: ptr(int64(800000))})
	assert.True(t, e.HasPricedPlan())
	assert.Equal(t, int64(800000), *e.Plan(PlanTake).Amount)
	assert.Nil(t, e.Plan(PlanUme).Amount)
	assert.Equal(t, Plan{}, e.Plan("gold"))
}

func TestIsUrgentEvent(t *testing.T) {
	assert.True(t, IsUrgentEvent("stay_price"))
	assert.True(t, IsUrgentEvent("scroll_80"))
	assert.False(t, IsUrgentEvent("open"))
	assert.False(t, IsUrgentEvent("plan_select_take"))
	assert.False(t, IsUrgentEvent("STAY_PRICE"))
}

func TestDescribeEvent(t *testing.T) {
	cases := map[string]string{
		"open":             "見積もりを開封しました",
		"stay_price":       "金額欄をじっくり見ています",
		"scroll_80":        "ページを深くスクロールしています",
		"schedule_submit":  "工事日程の希望を送信しました",
		"plan_select_take": "竹プランを選択しました",
		"plan_select_gold": "ページを開きました",
		"anything":         "ページを開きました",
	}
	for in, want := range cases {
		assert.Equal(t, want, DescribeEvent(in), in)
	}
}

func TestEventMetricLabel(t *testing.T) {
	assert.Equal(t, "open", EventMetricLabel("open"))
	assert.Equal(t, "plan_select_ume", EventMetricLabel("plan_select_ume"))
	assert.Equal(t, "other", EventMetricLabel("plan_select_x"))
	assert.Equal(t, "other", EventMetricLabel("custom-event"))
}
