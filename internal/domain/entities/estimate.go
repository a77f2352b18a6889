package entities

import "time"

// ContractStatus is the customer-facing lifecycle of an estimate.
//
// An unset status means the customer has not reserved anything yet.
//   - tentative: the customer picked a plan and candidate visit slots
//   - closed: the owner finished the deal; customers can no longer submit
type ContractStatus string

const (
	ContractStatusUnset     ContractStatus = ""
	ContractStatusTentative ContractStatus = "tentative"
	ContractStatusClosed    ContractStatus = "closed"
)

const MaxGalleryImages = 5

// Estimate is one priced proposal an owner sends to a customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-created_at-index): user_id + created_at
//   - token uniqueness is guarded by a separate estimate_tokens item
//
// The token is the only key a customer ever sees.
type Estimate struct {
	ID                 string         `json:"id"`
	Token              string         `json:"token"`
	UserID             string         `json:"user_id"`
	CustomerName       string         `json:"customer_name"`
	CustomerPhone      string         `json:"customer_phone,omitempty"`
	Matsu              Plan           `json:"matsu"`
	Take               Plan           `json:"take"`
	Ume                Plan           `json:"ume"`
	Amount             *int64         `json:"amount,omitempty"`
	GalleryImages      []string       `json:"gallery_images"`
	GalleryDescription string         `json:"gallery_description,omitempty"`
	ContractStatus     ContractStatus `json:"contract_status"`
	ContractPlan       PlanKey        `json:"contract_plan,omitempty"`
	ContractSlots      []string       `json:"contract_slots"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// Plan returns the slot stored under key.
func (e Estimate) Plan(key PlanKey) Plan {
	switch key {
	case PlanMatsu:
		return e.Matsu
	case PlanTake:
		return e.Take
	case PlanUme:
		return e.Ume
	default:
		return Plan{}
	}
}

func (e *Estimate) SetPlan(key PlanKey, p Plan) {
	switch key {
	case PlanMatsu:
		e.Matsu = p
	case PlanTake:
		e.Take = p
	case PlanUme:
		e.Ume = p
	}
}

// HasPricedPlan reports whether at least one plan slot carries an amount.
func (e Estimate) HasPricedPlan() bool {
	for _, k := range PlanKeys {
		if e.Plan(k).Amount != nil {
			return true
		}
	}
	return false
}

func (e Estimate) IsClosed() bool {
	return e.ContractStatus == ContractStatusClosed
}

// ContractUpdate is what a customer's reservation writes onto an estimate.
type ContractUpdate struct {
	Plan  PlanKey
	Slots []string
}

// EstimateContent is the owner-editable part of an estimate.
type EstimateContent struct {
	CustomerName       string
	CustomerPhone      string
	Matsu              Plan
	Take               Plan
	Ume                Plan
	Amount             *int64
	GalleryImages      []string
	GalleryDescription string
}
