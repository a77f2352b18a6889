package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EstimateRepository is the relational IEstimateRepository. The token column
// carries a unique index; a duplicate insert surfaces as ErrTokenConflict.
type EstimateRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimateRepository = (*EstimateRepository)(nil)

func NewEstimateRepository(db *gorm.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

func (r *EstimateRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	m := toEstimateModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Estimate{}, interfaces.ErrTokenConflict
		}
		return entities.Estimate{}, fmt.Errorf("create estimate: %w", err)
	}
	return m.toEntity(), nil
}

func (r *EstimateRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *EstimateRepository) GetByToken(ctx context.Context, token string) (entities.Estimate, error) {
	return r.first(ctx, "token = ?", token)
}

func (r *EstimateRepository) FindByIDAndToken(ctx context.Context, id, token string) (entities.Estimate, error) {
	return r.first(ctx, "id = ? AND token = ?", id, token)
}

func (r *EstimateRepository) ListByOwner(ctx context.Context, userID string) ([]entities.Estimate, error) {
	var rows []estimateModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Estimate, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *EstimateRepository) UpdateContent(ctx context.Context, id, userID string, c entities.EstimateContent) (entities.Estimate, error) {
	res := r.db.WithContext(ctx).
		Model(&estimateModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"customer_name":       c.CustomerName,
			"customer_phone":      c.CustomerPhone,
			"matsu_amount":        c.Matsu.Amount,
			"matsu_label":         c.Matsu.Label,
			"matsu_description":   c.Matsu.Description,
			"take_amount":         c.Take.Amount,
			"take_label":          c.Take.Label,
			"take_description":    c.Take.Description,
			"ume_amount":          c.Ume.Amount,
			"ume_label":           c.Ume.Label,
			"ume_description":     c.Ume.Description,
			"amount":              c.Amount,
			"gallery_images":      datatypes.JSONSlice[string](nonNil(c.GalleryImages)),
			"gallery_description": c.GalleryDescription,
			"updated_at":          time.Now().UTC(),
		})
	if res.Error != nil {
		return entities.Estimate{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Estimate{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *EstimateRepository) UpdateContract(ctx context.Context, id string, u entities.ContractUpdate) (entities.Estimate, error) {
	res := r.db.WithContext(ctx).
		Model(&estimateModel{}).
		Where("id = ? AND contract_status <> ?", id, string(entities.ContractStatusClosed)).
		Updates(map[string]interface{}{
			"contract_status": string(entities.ContractStatusTentative),
			"contract_plan":   string(u.Plan),
			"contract_slots":  datatypes.JSONSlice[string](nonNil(u.Slots)),
			"updated_at":      time.Now().UTC(),
		})
	if res.Error != nil {
		return entities.Estimate{}, res.Error
	}

	e, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if res.RowsAffected == 0 && e.IsClosed() {
		return entities.Estimate{}, interfaces.ErrContractClosed
	}
	return e, nil
}

func (r *EstimateRepository) Close(ctx context.Context, id, userID string) (entities.Estimate, error) {
	res := r.db.WithContext(ctx).
		Model(&estimateModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"contract_status": string(entities.ContractStatusClosed),
			"updated_at":      time.Now().UTC(),
		})
	if res.Error != nil {
		return entities.Estimate{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Estimate{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *EstimateRepository) first(ctx context.Context, query string, args ...interface{}) (entities.Estimate, error) {
	var m estimateModel
	err := r.db.WithContext(ctx).Where(query, args...).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Estimate{}, nil
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	return m.toEntity(), nil
}
