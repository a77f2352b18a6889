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

	"github.com/google/uuid"
)

var ErrInvalidTrackingInput = errors.New("estimateId and eventType must not be empty")

// ITrackingUseCase records engagement events from the public page.
//
// There is no read before the write and no de-duplication; every call stores
// one row.
type ITrackingUseCase interface {
	Track(ctx context.Context, estimateID, eventType, userAgent string) error
}

type TrackingUseCase struct {
	logs    interfaces.IAccessLogRepository
	log     *logger.Logger
	metrics *observability.Metrics
	now     func() time.Time
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(logs interfaces.IAccessLogRepository, log *logger.Logger, metrics *observability.Metrics) *TrackingUseCase {
	return &TrackingUseCase{
		logs:    logs,
		log:     log.With("component", "tracking"),
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *TrackingUseCase) Track(ctx context.Context, estimateID, eventType, userAgent string) error {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" || strings.TrimSpace(eventType) == "" {
		return ErrInvalidTrackingInput
	}
	if len(userAgent) > entities.MaxUserAgentLength {
		userAgent = truncateUTF8(userAgent, entities.MaxUserAgentLength)
	}

	label := entities.EventMetricLabel(eventType)
	err := u.logs.Create(ctx, entities.AccessLog{
		ID:         uuid.NewString(),
		EstimateID: estimateID,
		EventType:  eventType,
		UserAgent:  userAgent,
		CreatedAt:  u.now(),
	})
	if err != nil {
		u.metrics.EventTracked(label, "error")
		u.log.Error("access log insert failed", "estimate_id", estimateID, "event_type", eventType, "error", err)
		return err
	}
	u.metrics.EventTracked(label, "ok")
	return nil
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func utf8RuneStart(b byte) bool { return b&0xC0 != 0x80 }
