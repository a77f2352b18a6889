package gormrepo

import (
	"context"
	"fmt"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EstimateContactRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimateContactRepository = (*EstimateContactRepository)(nil)

func NewEstimateContactRepository(db *gorm.DB) *EstimateContactRepository {
	return &EstimateContactRepository{db: db}
}

func (r *EstimateContactRepository) Upsert(ctx context.Context, c entities.EstimateContact) (entities.EstimateContact, error) {
	m := estimateContactModel{
		EstimateID:  c.EstimateID,
		LineUserID:  c.LineUserID,
		Token:       c.Token,
		DisplayName: c.DisplayName,
		PictureURL:  c.PictureURL,
		LinkedAt:    c.LinkedAt.UTC(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "estimate_id"}, {Name: "line_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "display_name", "picture_url", "linked_at"}),
	}).Create(&m).Error
	if err != nil {
		return entities.EstimateContact{}, fmt.Errorf("upsert estimate contact: %w", err)
	}
	return c, nil
}

func (r *EstimateContactRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateContact, error) {
	var rows []estimateContactModel
	err := r.db.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		Order("linked_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.EstimateContact, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.EstimateContact{
			EstimateID:  m.EstimateID,
			LineUserID:  m.LineUserID,
			Token:       m.Token,
			DisplayName: m.DisplayName,
			PictureURL:  m.PictureURL,
			LinkedAt:    m.LinkedAt.UTC(),
		})
	}
	return out, nil
}
