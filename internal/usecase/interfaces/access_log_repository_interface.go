package interfaces

import (
	"context"

	"mitsumori_tsuikyaku/internal/domain/entities"
)

// IAccessLogRepository stores page engagement events. Rows are never updated.

type IAccessLogRepository interface {
	Create(ctx context.Context, l entities.AccessLog) error
	// ListRecentByEstimateIDs returns at most limit events across the given
	// estimates, newest first.
	ListRecentByEstimateIDs(ctx context.Context, estimateIDs []string, limit int) ([]entities.AccessLog, error)
}
