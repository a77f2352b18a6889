package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"mitsumori_tsuikyaku/internal/domain/entities"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

var _ interfaces.IAccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	m := accountModel{ID: a.ID, Email: a.Email, PasswordHash: a.PasswordHash, CreatedAt: a.CreatedAt.UTC()}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Account{}, interfaces.ErrEmailTaken
		}
		return entities.Account{}, fmt.Errorf("create account: %w", err)
	}
	return a, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (entities.Account, error) {
	var m accountModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Account{}, nil
	}
	if err != nil {
		return entities.Account{}, err
	}
	return entities.Account{ID: m.ID, Email: m.Email, PasswordHash: m.PasswordHash, CreatedAt: m.CreatedAt.UTC()}, nil
}
