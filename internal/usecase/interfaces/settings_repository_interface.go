package interfaces

import (
	"context"

	"mitsumori_tsuikyaku/internal/domain/entities"
)

// ISettingsRepository keeps the one-per-owner profile and LINE settings rows.
// Missing rows come back as zero values.

type ISettingsRepository interface {
	GetProfile(ctx context.Context, userID string) (entities.Profile, error)
	SaveProfile(ctx context.Context, p entities.Profile) (entities.Profile, error)
	GetLineSettings(ctx context.Context, userID string) (entities.LineSettings, error)
	SaveLineSettings(ctx context.Context, s entities.LineSettings) (entities.LineSettings, error)
}
