package gormrepo

import (
	"context"
	"fmt"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type AccessLogRepository struct {
	db *gorm.DB
}

var _ interfaces.IAccessLogRepository = (*AccessLogRepository)(nil)

func NewAccessLogRepository(db *gorm.DB) *AccessLogRepository {
	return &AccessLogRepository{db: db}
}

func (r *AccessLogRepository) Create(ctx context.Context, l entities.AccessLog) error {
	m := accessLogModel{
		ID:         l.ID,
		EstimateID: l.EstimateID,
		EventType:  l.EventType,
		UserAgent:  l.UserAgent,
		CreatedAt:  l.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert access log: %w", err)
	}
	return nil
}

func (r *AccessLogRepository) ListRecentByEstimateIDs(ctx context.Context, estimateIDs []string, limit int) ([]entities.AccessLog, error) {
	if len(estimateIDs) == 0 || limit <= 0 {
		return []entities.AccessLog{}, nil
	}
	var rows []accessLogModel
	err := r.db.WithContext(ctx).
		Where("estimate_id IN ?", estimateIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.AccessLog, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.AccessLog{
			ID:         m.ID,
			EstimateID: m.EstimateID,
			EventType:  m.EventType,
			UserAgent:  m.UserAgent,
			CreatedAt:  m.CreatedAt.UTC(),
		})
	}
	return out, nil
}
