package usecase

import (
	"context"
	"errors"
	"strings"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/internal/infrastructure/observability"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"
)

var (
	ErrInvalidContractInput = errors.New("invalid contract input")
	ErrContractClosed       = interfaces.ErrContractClosed
)

// ContractSubmission is the customer's reservation as received. Values that
// were not strings in the request arrive here as empty strings.
type ContractSubmission struct {
	EstimateID string
	Token      string
	PlanKey    string
	Slots      []string
}

// Normalize trims slots and drops blank ones. Ids are matched as sent.
func (s ContractSubmission) Normalize() ContractSubmission {
	out := ContractSubmission{
		EstimateID: s.EstimateID,
		Token:      s.Token,
		PlanKey:    s.PlanKey,
		Slots:      make([]string, 0, len(s.Slots)),
	}
	for _, slot := range s.Slots {
		if slot = strings.TrimSpace(slot); slot != "" {
			out.Slots = append(out.Slots, slot)
		}
	}
	return out
}

// IContractUseCase turns a customer's plan + visit slot choice into a
// tentative contract.
//
// Input is validated before any store access. The estimate must match both
// its id and its token; a mismatch is indistinguishable from a missing row.
type IContractUseCase interface {
	Submit(ctx context.Context, s ContractSubmission) error
}

type ContractUseCase struct {
	estimates interfaces.IEstimateRepository
	log       *logger.Logger
	metrics   *observability.Metrics
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(estimates interfaces.IEstimateRepository, log *logger.Logger, metrics *observability.Metrics) *ContractUseCase {
	return &ContractUseCase{estimates: estimates, log: log.With("component", "contract"), metrics: metrics}
}

func (u *ContractUseCase) Submit(ctx context.Context, s ContractSubmission) error {
	s = s.Normalize()
	plan, ok := entities.ParsePlanKey(s.PlanKey)
	if s.EstimateID == "" || s.Token == "" || !ok || len(s.Slots) == 0 {
		u.metrics.ContractSubmitted("invalid")
		return ErrInvalidContractInput
	}

	e, err := u.estimates.FindByIDAndToken(ctx, s.EstimateID, s.Token)
	if err != nil {
		u.log.Warn("two-factor lookup failed", "estimate_id", s.EstimateID, "error", err)
		u.metrics.ContractSubmitted("not_found")
		return ErrEstimateNotFound
	}
	if e.ID == "" {
		u.metrics.ContractSubmitted("not_found")
		return ErrEstimateNotFound
	}
	if e.IsClosed() {
		u.metrics.ContractSubmitted("closed")
		return ErrContractClosed
	}

	updated, err := u.estimates.UpdateContract(ctx, e.ID, entities.ContractUpdate{Plan: plan, Slots: s.Slots})
	if err != nil {
		if errors.Is(err, interfaces.ErrContractClosed) {
			u.metrics.ContractSubmitted("closed")
			return ErrContractClosed
		}
		u.metrics.ContractSubmitted("error")
		u.log.Error("contract update failed", "estimate_id", e.ID, "error", err)
		return err
	}
	if updated.ID == "" {
		u.metrics.ContractSubmitted("not_found")
		return ErrEstimateNotFound
	}

	u.metrics.ContractSubmitted("ok")
	u.log.Info("tentative contract recorded", "estimate_id", e.ID, "plan", string(plan), "slots", len(s.Slots))
	return nil
}
