// Package authoring models the owner's plan editor as a reducer over an
// immutable Draft. Every transition keeps between one and three plans active.
package authoring

import (
	"errors"
	"strconv"
	"strings"

	"mitsumori_tsuikyaku/internal/domain/entities"
)

var (
	ErrPlanLimitReached = errors.New("all plans are already active")
	ErrPlanAlreadyAdded = errors.New("plan is already active")
	ErrLastPlan         = errors.New("at least one plan must stay active")
	ErrPlanNotActive    = errors.New("plan is not active")
	ErrUnknownPlan      = errors.New("unknown plan key")
	ErrUnknownField     = errors.New("unknown plan field")
	ErrInvalidPrice     = errors.New("invalid plan price")
	ErrPriceRequired    = errors.New("first plan price is required")
)

type Field string

const (
	FieldLabel       Field = "label"
	FieldDescription Field = "description"
	FieldPrice       Field = "price"
)

// Detail is the raw form state of one plan card.
type Detail struct {
	Label       string
	Description string
	Price       string
}

type Draft struct {
	active  []entities.PlanKey
	details map[entities.PlanKey]Detail
}

// New starts a draft with a single active plan.
func New(first entities.PlanKey) (Draft, error) {
	if !first.Valid() {
		return Draft{}, ErrUnknownPlan
	}
	d := Draft{details: defaultDetails()}
	d.active = []entities.PlanKey{first}
	return d, nil
}

// Default is the editor's initial state: all three plans active.
func Default() Draft {
	return Draft{
		active:  append([]entities.PlanKey(nil), entities.PlanKeys...),
		details: defaultDetails(),
	}
}

func defaultDetails() map[entities.PlanKey]Detail {
	m := make(map[entities.PlanKey]Detail, len(entities.PlanKeys))
	for _, k := range entities.PlanKeys {
		m[k] = Detail{Label: k.DefaultLabel(), Description: k.AuthoringDescription()}
	}
	return m
}

func (d Draft) Active() []entities.PlanKey {
	return append([]entities.PlanKey(nil), d.active...)
}

func (d Draft) Detail(k entities.PlanKey) Detail { return d.details[k] }

func (d Draft) IsActive(k entities.PlanKey) bool {
	for _, a := range d.active {
		if a == k {
			return true
		}
	}
	return false
}

// NextPlanKey is the first inactive plan in display order.
func (d Draft) NextPlanKey() (entities.PlanKey, bool) {
	for _, k := range entities.PlanKeys {
		if !d.IsActive(k) {
			return k, true
		}
	}
	return "", false
}

func (d Draft) CanAdd() bool    { return len(d.active) < len(entities.PlanKeys) }
func (d Draft) CanRemove() bool { return len(d.active) > 1 }

func (d Draft) clone() Draft {
	out := Draft{
		active:  append([]entities.PlanKey(nil), d.active...),
		details: make(map[entities.PlanKey]Detail, len(d.details)),
	}
	for k, v := range d.details {
		out.details[k] = v
	}
	return out
}

// Action is one editor transition.
type Action interface {
	apply(d Draft) (Draft, error)
}

// AddPlan activates Key, or the next inactive plan when Key is empty.
type AddPlan struct{ Key entities.PlanKey }

type RemovePlan struct{ Key entities.PlanKey }

type EditField struct {
	Key   entities.PlanKey
	Field Field
	Value string
}

// Reduce applies a to d. On error d is returned unchanged.
func Reduce(d Draft, a Action) (Draft, error) {
	next, err := a.apply(d)
	if err != nil {
		return d, err
	}
	return next, nil
}

func (a AddPlan) apply(d Draft) (Draft, error) {
	if !d.CanAdd() {
		return d, ErrPlanLimitReached
	}
	key := a.Key
	if key == "" {
		key, _ = d.NextPlanKey()
	}
	if !key.Valid() {
		return d, ErrUnknownPlan
	}
	if d.IsActive(key) {
		return d, ErrPlanAlreadyAdded
	}
	out := d.clone()
	out.active = append(out.active, key)
	return out, nil
}

func (a RemovePlan) apply(d Draft) (Draft, error) {
	if !d.IsActive(a.Key) {
		return d, ErrPlanNotActive
	}
	if !d.CanRemove() {
		return d, ErrLastPlan
	}
	out := d.clone()
	kept := out.active[:0]
	for _, k := range out.active {
		if k != a.Key {
			kept = append(kept, k)
		}
	}
	out.active = kept
	return out, nil
}

func (a EditField) apply(d Draft) (Draft, error) {
	if !a.Key.Valid() {
		return d, ErrUnknownPlan
	}
	out := d.clone()
	det := out.details[a.Key]
	switch a.Field {
	case FieldLabel:
		det.Label = a.Value
	case FieldDescription:
		det.Description = a.Value
	case FieldPrice:
		det.Price = a.Value
	default:
		return d, ErrUnknownField
	}
	out.details[a.Key] = det
	return out, nil
}

// PlanSet is a submitted draft: the three slots plus the representative
// amount mirrored from the first active plan.
type PlanSet struct {
	Matsu  entities.Plan
	Take   entities.Plan
	Ume    entities.Plan
	Amount *int64
}

func (p PlanSet) Plan(k entities.PlanKey) entities.Plan {
	e := entities.Estimate{Matsu: p.Matsu, Take: p.Take, Ume: p.Ume}
	return e.Plan(k)
}

// Build validates the draft for submission. Inactive plans come out empty.
func (d Draft) Build() (PlanSet, error) {
	if len(d.active) == 0 {
		return PlanSet{}, ErrLastPlan
	}
	var e entities.Estimate
	var first *int64
	for i, k := range d.active {
		det := d.details[k]
		amount, err := ParsePrice(det.Price)
		if err != nil {
			return PlanSet{}, err
		}
		if i == 0 {
			if amount == nil {
				return PlanSet{}, ErrPriceRequired
			}
			first = amount
		}
		e.SetPlan(k, entities.Plan{
			Amount:      amount,
			Label:       optional(det.Label),
			Description: optional(det.Description),
		})
	}
	v := *first
	return PlanSet{Matsu: e.Matsu, Take: e.Take, Ume: e.Ume, Amount: &v}, nil
}

// ParsePrice reads a yen amount. Blank input means no price; thousands
// separators and a leading yen sign are tolerated.
func ParsePrice(raw string) (*int64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimLeft(s, "¥￥")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return nil, ErrInvalidPrice
	}
	return &n, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
