package gormrepo

import (
	"context"
	"errors"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	db *gorm.DB
}

var _ interfaces.ISettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) GetProfile(ctx context.Context, userID string) (entities.Profile, error) {
	var m profileModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Profile{}, nil
	}
	if err != nil {
		return entities.Profile{}, err
	}
	return entities.Profile{
		UserID:      m.UserID,
		CompanyName: m.CompanyName,
		PhoneNumber: m.PhoneNumber,
		LineURL:     m.LineURL,
		UpdatedAt:   m.UpdatedAt.UTC(),
	}, nil
}

func (r *SettingsRepository) SaveProfile(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	m := profileModel{
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		PhoneNumber: p.PhoneNumber,
		LineURL:     p.LineURL,
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"company_name", "phone_number", "line_url", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return entities.Profile{}, err
	}
	return p, nil
}

func (r *SettingsRepository) GetLineSettings(ctx context.Context, userID string) (entities.LineSettings, error) {
	var m lineSettingsModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.LineSettings{}, nil
	}
	if err != nil {
		return entities.LineSettings{}, err
	}
	return entities.LineSettings{
		UserID:              m.UserID,
		SealedChannelToken:  m.ChannelAccessToken,
		SealedChannelSecret: m.ChannelSecret,
		LiffURL:             m.LiffURL,
		LiffID:              m.LiffID,
		UpdatedAt:           m.UpdatedAt.UTC(),
	}, nil
}

func (r *SettingsRepository) SaveLineSettings(ctx context.Context, s entities.LineSettings) (entities.LineSettings, error) {
	m := lineSettingsModel{
		UserID:             s.UserID,
		ChannelAccessToken: s.SealedChannelToken,
		ChannelSecret:      s.SealedChannelSecret,
		LiffURL:            s.LiffURL,
		LiffID:             s.LiffID,
		UpdatedAt:          s.UpdatedAt.UTC(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"channel_access_token", "channel_secret", "liff_url", "liff_id", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return entities.LineSettings{}, err
	}
	return s, nil
}
