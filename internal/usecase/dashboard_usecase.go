package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// ActivityLimit caps the owner's activity timeline.
const ActivityLimit = 20

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
)

// EstimateDetail is an owner's view of one estimate.
type EstimateDetail struct {
	Estimate entities.Estimate
	Contacts []entities.EstimateContact
	Events   []entities.AccessLog
}

// IDashboardUseCase serves the owner's read views. Every call is scoped to
// userID; estimates of other owners behave as missing.
type IDashboardUseCase interface {
	ListActivity(ctx context.Context, userID string) ([]entities.ActivityItem, error)
	ListEstimates(ctx context.Context, userID string) ([]entities.Estimate, error)
	GetEstimate(ctx context.Context, userID, id string) (EstimateDetail, error)
	CloseEstimate(ctx context.Context, userID, id string) (entities.Estimate, error)
}

type DashboardUseCase struct {
	estimates interfaces.IEstimateRepository
	logs      interfaces.IAccessLogRepository
	contacts  interfaces.IEstimateContactRepository
	log       *logger.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	estimates interfaces.IEstimateRepository,
	logs interfaces.IAccessLogRepository,
	contacts interfaces.IEstimateContactRepository,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{estimates: estimates, logs: logs, contacts: contacts, log: log.With("component", "dashboard")}
}

func (u *DashboardUseCase) ListEstimates(ctx context.Context, userID string) ([]entities.Estimate, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthenticated
	}
	list, err := u.estimates.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(list)
	return list, nil
}

func (u *DashboardUseCase) ListActivity(ctx context.Context, userID string) ([]entities.ActivityItem, error) {
	estimates, err := u.ListEstimates(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(estimates) == 0 {
		return []entities.ActivityItem{}, nil
	}

	byID := make(map[string]entities.Estimate, len(estimates))
	ids := make([]string, 0, len(estimates))
	for _, e := range estimates {
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}

	logs, err := u.logs.ListRecentByEstimateIDs(ctx, ids, ActivityLimit)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].CreatedAt.After(logs[j].CreatedAt) })
	if len(logs) > ActivityLimit {
		logs = logs[:ActivityLimit]
	}

	items := make([]entities.ActivityItem, 0, len(logs))
	for _, l := range logs {
		e, ok := byID[l.EstimateID]
		if !ok {
			continue
		}
		items = append(items, entities.ActivityItem{
			Log:          l,
			EstimateID:   e.ID,
			CustomerName: e.CustomerName,
			Amount:       e.Amount,
		})
	}
	return items, nil
}

func (u *DashboardUseCase) GetEstimate(ctx context.Context, userID, id string) (EstimateDetail, error) {
	e, err := u.owned(ctx, userID, id)
	if err != nil {
		return EstimateDetail{}, err
	}

	detail := EstimateDetail{Estimate: e}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		contacts, err := u.contacts.ListByEstimateID(gctx, e.ID)
		detail.Contacts = contacts
		return err
	})
	g.Go(func() error {
		events, err := u.logs.ListRecentByEstimateIDs(gctx, []string{e.ID}, ActivityLimit)
		detail.Events = events
		return err
	})
	if err := g.Wait(); err != nil {
		return EstimateDetail{}, err
	}
	return detail, nil
}

// CloseEstimate marks the deal finished. Customers can no longer submit a
// contract for it afterwards.
func (u *DashboardUseCase) CloseEstimate(ctx context.Context, userID, id string) (entities.Estimate, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.Estimate{}, ErrUnauthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, err := u.estimates.Close(ctx, id, userID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	u.log.Info("estimate closed", "estimate_id", e.ID, "user_id", userID)
	return e, nil
}

func (u *DashboardUseCase) owned(ctx context.Context, userID, id string) (entities.Estimate, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.Estimate{}, ErrUnauthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, err := u.estimates.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" || e.UserID != userID {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func sortNewestFirst(list []entities.Estimate) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
}
