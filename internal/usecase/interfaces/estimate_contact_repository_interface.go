package interfaces

import (
	"context"

	"mitsumori_tsuikyaku/internal/domain/entities"
)

type IEstimateContactRepository interface {
	// Upsert inserts or overwrites the row keyed by (estimate_id, line_user_id).
	Upsert(ctx context.Context, c entities.EstimateContact) (entities.EstimateContact, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateContact, error)
}
