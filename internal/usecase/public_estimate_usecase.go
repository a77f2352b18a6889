package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound = errors.New("estimate not found")
	ErrInvalidToken     = errors.New("invalid token")
)

// PublicPlan is one tier as rendered on the customer page.
type PublicPlan struct {
	Key         entities.PlanKey
	Label       string
	Amount      int64
	Description string
	Perks       []string
	Recommended bool
}

// PublicEstimate is the customer-safe projection of an estimate. It never
// carries owner ids, credentials or contact rows.
type PublicEstimate struct {
	ID                 string
	Token              string
	CustomerName       string
	CompanyName        string
	PhoneNumber        string
	LineURL            string
	Plans              []PublicPlan
	GalleryImages      []string
	GalleryDescription string
	IssuedAt           time.Time
	ContractStatus     entities.ContractStatus
	ContractPlan       entities.PlanKey
}

// LiffEntry tells the LINE entry page where to send the customer.
type LiffEntry struct {
	LiffID       string
	RedirectPath string
}

// IPublicEstimateUseCase resolves the opaque token used in customer URLs.
//
// The token is the only accepted key. Misses and backend failures are
// reported identically as ErrEstimateNotFound.
type IPublicEstimateUseCase interface {
	ResolveByToken(ctx context.Context, token string) (PublicEstimate, error)
	ResolveLiffEntry(ctx context.Context, token string) (LiffEntry, error)
}

type PublicEstimateUseCase struct {
	estimates interfaces.IEstimateRepository
	settings  interfaces.ISettingsRepository
	log       *logger.Logger
}

var _ IPublicEstimateUseCase = (*PublicEstimateUseCase)(nil)

func NewPublicEstimateUseCase(estimates interfaces.IEstimateRepository, settings interfaces.ISettingsRepository, log *logger.Logger) *PublicEstimateUseCase {
	return &PublicEstimateUseCase{estimates: estimates, settings: settings, log: log.With("component", "public_estimate")}
}

func (u *PublicEstimateUseCase) ResolveByToken(ctx context.Context, token string) (PublicEstimate, error) {
	e, err := u.lookup(ctx, token)
	if err != nil {
		return PublicEstimate{}, err
	}

	profile, err := u.settings.GetProfile(ctx, e.UserID)
	if err != nil {
		// The page still renders without company details.
		u.log.Warn("profile lookup failed", "estimate_id", e.ID, "error", err)
		profile = entities.Profile{}
	}

	return PublicEstimate{
		ID:                 e.ID,
		Token:              e.Token,
		CustomerName:       e.CustomerName,
		CompanyName:        profile.CompanyName,
		PhoneNumber:        profile.PhoneNumber,
		LineURL:            profile.LineURL,
		Plans:              PublicPlans(e),
		GalleryImages:      firstN(e.GalleryImages, entities.MaxGalleryImages),
		GalleryDescription: strings.TrimSpace(e.GalleryDescription),
		IssuedAt:           e.CreatedAt,
		ContractStatus:     e.ContractStatus,
		ContractPlan:       e.ContractPlan,
	}, nil
}

func (u *PublicEstimateUseCase) ResolveLiffEntry(ctx context.Context, token string) (LiffEntry, error) {
	e, err := u.lookup(ctx, token)
	if err != nil {
		return LiffEntry{}, err
	}

	entry := LiffEntry{RedirectPath: "/e/" + e.Token}
	s, err := u.settings.GetLineSettings(ctx, e.UserID)
	if err != nil {
		u.log.Warn("line settings lookup failed", "estimate_id", e.ID, "error", err)
		return entry, nil
	}
	entry.LiffID = s.LiffID
	return entry, nil
}

func (u *PublicEstimateUseCase) lookup(ctx context.Context, token string) (entities.Estimate, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	e, err := u.estimates.GetByToken(ctx, token)
	if err != nil {
		u.log.Error("token lookup failed", "error", err)
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// PublicPlans lists the offered tiers in display order. Rows that predate
// per-plan amounts show every tier priced at the representative amount.
func PublicPlans(e entities.Estimate) []PublicPlan {
	legacy := !e.HasPricedPlan()
	out := make([]PublicPlan, 0, len(entities.PlanKeys))
	for _, k := range entities.PlanKeys {
		p := e.Plan(k)
		if !legacy && !p.Offered() {
			continue
		}
		out = append(out, PublicPlan{
			Key:         k,
			Label:       p.LabelOr(k.DefaultLabel()),
			Amount:      firstAmount(p.Amount, e.Amount),
			Description: p.DescriptionOr(k.DefaultDescription()),
			Perks:       k.Perks(),
			Recommended: k == entities.PlanTake,
		})
	}
	return out
}

func firstAmount(candidates ...*int64) int64 {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return 0
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		s = s[:n]
	}
	return append([]string{}, s...)
}
