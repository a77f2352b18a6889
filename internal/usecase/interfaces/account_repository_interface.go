package interfaces

import (
	"context"
	"errors"

	"mitsumori_tsuikyaku/internal/domain/entities"
)

var ErrEmailTaken = errors.New("email already registered")

type IAccountRepository interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByEmail(ctx context.Context, email string) (entities.Account, error)
}
