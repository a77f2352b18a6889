package interfaces

import (
	"context"
	"errors"

	"mitsumori_tsuikyaku/internal/domain/entities"
)

var (
	// ErrTokenConflict is returned by Create when the public token is taken.
	ErrTokenConflict = errors.New("estimate token already in use")
	// ErrContractClosed is returned by UpdateContract when the estimate is closed.
	ErrContractClosed = errors.New("estimate contract is closed")
)

// IEstimateRepository abstracts persistence for Estimate.
//
// Lookups return the zero Estimate (empty ID) when nothing matches. Owner
// scoped writes behave the same way when the row belongs to someone else.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByToken(ctx context.Context, token string) (entities.Estimate, error)
	FindByIDAndToken(ctx context.Context, id string, token string) (entities.Estimate, error)
	ListByOwner(ctx context.Context, userID string) ([]entities.Estimate, error)
	UpdateContent(ctx context.Context, id string, userID string, content entities.EstimateContent) (entities.Estimate, error)
	UpdateContract(ctx context.Context, id string, update entities.ContractUpdate) (entities.Estimate, error)
	Close(ctx context.Context, id string, userID string) (entities.Estimate, error)
}
