package entities

import "strings"

// PlanKey names one of the three fixed plan tiers.
type PlanKey string

const (
	PlanMatsu PlanKey = "matsu"
	PlanTake  PlanKey = "take"
	PlanUme   PlanKey = "ume"
)

// PlanKeys lists the tiers in display order.
var PlanKeys = []PlanKey{PlanMatsu, PlanTake, PlanUme}

// ParsePlanKey returns the tier for raw, which must match exactly.
func ParsePlanKey(raw string) (PlanKey, bool) {
	switch PlanKey(raw) {
	case PlanMatsu, PlanTake, PlanUme:
		return PlanKey(raw), true
	default:
		return "", false
	}
}

func (k PlanKey) Valid() bool {
	_, ok := ParsePlanKey(string(k))
	return ok
}

func (k PlanKey) DefaultLabel() string {
	switch k {
	case PlanMatsu:
		return "松プラン"
	case PlanTake:
		return "竹プラン"
	case PlanUme:
		return "梅プラン"
	default:
		return ""
	}
}

// ShortLabel is the one-character name used in dashboard tables.
func (k PlanKey) ShortLabel() string {
	switch k {
	case PlanMatsu:
		return "松"
	case PlanTake:
		return "竹"
	case PlanUme:
		return "梅"
	default:
		return ""
	}
}

// DefaultDescription is the customer-facing blurb shown when the owner left
// the description empty.
func (k PlanKey) DefaultDescription() string {
	switch k {
	case PlanMatsu:
		return "最上位のサポートとスピード導入をセットにしたプランです。"
	case PlanTake:
		return "コストと成果のバランスを重視した標準プランです。"
	case PlanUme:
		return "まずは試してみたい方向けのミニマム構成です。"
	default:
		return ""
	}
}

// AuthoringDescription pre-fills the owner's form when a tier is added.
func (k PlanKey) AuthoringDescription() string {
	switch k {
	case PlanMatsu:
		return "最上位級のサポートとリッチなオプションを含みます。"
	case PlanTake:
		return "迷ったらこれ。コストと成果のバランスが最適です。"
	case PlanUme:
		return "必要最低限に絞った試しやすいプランです。"
	default:
		return ""
	}
}

// Perks are the bullet points rendered under each tier on the public page.
func (k PlanKey) Perks() []string {
	switch k {
	case PlanMatsu:
		return []string{"専任ディレクターが伴走", "即日着手サポート", "優先アフターフォロー"}
	case PlanTake:
		return []string{"十分な自動化機能", "チャネルサポート", "基本保証1年"}
	case PlanUme:
		return []string{"シンプル導入", "短納期スタート", "オプションで拡張可"}
	default:
		return nil
	}
}

// Plan is one priced tier. A nil Amount means the tier is not offered.
type Plan struct {
	Amount      *int64  `json:"amount,omitempty"`
	Label       *string `json:"label,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p Plan) Offered() bool { return p.Amount != nil }

// LabelOr returns the trimmed label, or def when none is set.
func (p Plan) LabelOr(def string) string {
	if p.Label != nil {
		if v := strings.TrimSpace(*p.Label); v != "" {
			return v
		}
	}
	return def
}

func (p Plan) DescriptionOr(def string) string {
	if p.Description != nil {
		if v := strings.TrimSpace(*p.Description); v != "" {
			return v
		}
	}
	return def
}
