package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/internal/infrastructure/observability"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"
)

var ErrInvalidLinkInput = errors.New("invalid link input")

// LineLink is the identity the LINE front end obtained for the viewer.
type LineLink struct {
	Token       string
	LineUserID  string
	DisplayName *string
	PictureURL  *string
}

// ILiffLinkUseCase attaches a LINE user to the estimate behind a token.
// Repeating the call for the same pair refreshes the row.
type ILiffLinkUseCase interface {
	Link(ctx context.Context, l LineLink) error
}

type LiffLinkUseCase struct {
	estimates interfaces.IEstimateRepository
	contacts  interfaces.IEstimateContactRepository
	log       *logger.Logger
	metrics   *observability.Metrics
	now       func() time.Time
}

var _ ILiffLinkUseCase = (*LiffLinkUseCase)(nil)

func NewLiffLinkUseCase(
	estimates interfaces.IEstimateRepository,
	contacts interfaces.IEstimateContactRepository,
	log *logger.Logger,
	metrics *observability.Metrics,
) *LiffLinkUseCase {
	return &LiffLinkUseCase{
		estimates: estimates,
		contacts:  contacts,
		log:       log.With("component", "liff_link"),
		metrics:   metrics,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *LiffLinkUseCase) Link(ctx context.Context, l LineLink) error {
	token := strings.TrimSpace(l.Token)
	lineUserID := strings.TrimSpace(l.LineUserID)
	if token == "" || lineUserID == "" {
		u.metrics.LineLinked("invalid")
		return ErrInvalidLinkInput
	}

	e, err := u.estimates.GetByToken(ctx, token)
	if err != nil {
		u.log.Warn("token lookup failed", "error", err)
		u.metrics.LineLinked("not_found")
		return ErrEstimateNotFound
	}
	if e.ID == "" {
		u.metrics.LineLinked("not_found")
		return ErrEstimateNotFound
	}

	_, err = u.contacts.Upsert(ctx, entities.EstimateContact{
		EstimateID:  e.ID,
		LineUserID:  lineUserID,
		Token:       token,
		DisplayName: l.DisplayName,
		PictureURL:  l.PictureURL,
		LinkedAt:    u.now(),
	})
	if err != nil {
		u.metrics.LineLinked("error")
		u.log.Error("contact upsert failed", "estimate_id", e.ID, "error", err)
		return err
	}

	u.metrics.LineLinked("ok")
	return nil
}
